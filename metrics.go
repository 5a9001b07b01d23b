// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ik5/pcmwav/pcm"
)

// meterName is the instrumentation scope for every pcmwav instrument.
const meterName = "github.com/ik5/pcmwav"

// Values of the status attribute on pcmwav.materializations.
const (
	StatusOK               = "ok"
	StatusMalformed        = "malformed"
	StatusInvalidParameter = "invalid_parameter"
	StatusTooLarge         = "too_large"
)

// durationBuckets are in seconds, sized for spoken advertisement spots.
var durationBuckets = []float64{
	0.5, 1, 2.5, 5, 10, 15, 30, 60, 120,
}

// Metrics holds the OpenTelemetry instruments a Materializer records to.
type Metrics struct {
	// Materializations counts calls. Use with attribute.String("status", ...).
	Materializations metric.Int64Counter

	// PCMBytes counts decoded PCM bytes, odd trailing bytes included.
	PCMBytes metric.Int64Counter

	// Truncations counts warnings. Use with attribute.String("kind", ...).
	Truncations metric.Int64Counter

	// AudioDuration is the play time of each rendition.
	AudioDuration metric.Float64Histogram
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Materializations, err = m.Int64Counter("pcmwav.materializations",
		metric.WithDescription("Payload materializations by outcome."),
	); err != nil {
		return nil, err
	}
	if met.PCMBytes, err = m.Int64Counter("pcmwav.pcm.bytes",
		metric.WithDescription("Decoded PCM bytes."),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}
	if met.Truncations, err = m.Int64Counter("pcmwav.truncations",
		metric.WithDescription("Payloads with dropped trailing data, by kind."),
	); err != nil {
		return nil, err
	}
	if met.AudioDuration, err = m.Float64Histogram("pcmwav.audio.duration",
		metric.WithDescription("Play time of rendered audio."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

func (m *Metrics) recordStatus(ctx context.Context, status string) {
	m.Materializations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}

func (m *Metrics) recordTruncation(ctx context.Context, w *pcm.TruncatedSampleWarning) {
	m.Truncations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", w.Kind.String())),
	)
}
