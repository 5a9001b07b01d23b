// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidParameter is returned when a sample rate or channel count
	// cannot describe a PCM stream.
	ErrInvalidParameter = errors.New("invalid audio parameter")

	// ErrInvalidDstSize is returned by sources that only emit whole frames
	// when dst cannot hold one.
	ErrInvalidDstSize = errors.New("dst size must hold at least one frame")

	// ErrUnknownFormat is returned by Registry.Decode for unregistered keys.
	ErrUnknownFormat = errors.New("no decoder registered for format")
)
