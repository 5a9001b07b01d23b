// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaterializeAll renders every payload concurrently and returns the
// renditions in input order.
//
// The first failure cancels the payloads that have not started yet and is
// returned wrapped with the index of the payload that caused it. A
// cancelled ctx stops the batch the same way.
func MaterializeAll(ctx context.Context, m *Materializer, encoded []string) ([]*Rendition, error) {
	out := make([]*Rendition, len(encoded))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range encoded {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			r, err := m.Materialize(egCtx, s)
			if err != nil {
				return fmt.Errorf("payload %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
