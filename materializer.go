// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/wav"
	"github.com/ik5/pcmwav/payload"
	"github.com/ik5/pcmwav/pcm"
	"github.com/ik5/pcmwav/playback"
)

// Rendition is everything derived from one payload. All fields are owned
// by the caller.
type Rendition struct {
	// WAV is a complete RIFF/WAVE file, MIME type wav.MIMEType.
	WAV []byte
	// Buffer is the same audio as planar floats.
	Buffer *playback.Buffer
	// View reads the decoded samples; it aliases the PCM bytes inside WAV.
	View   pcm.View
	Format audio.Format
	// Warnings lists data dropped while rendering, in the order it was
	// found. Empty for a clean payload.
	Warnings []*pcm.TruncatedSampleWarning
}

// Duration is the play time of the rendition.
func (r *Rendition) Duration() time.Duration {
	return r.Buffer.Duration()
}

// WriteTo writes the WAV file to w.
func (r *Rendition) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.WAV)
	if err == nil && n < len(r.WAV) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithLogger sets the logger for warnings and debug output.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Materializer) {
		m.logger = l
	}
}

// WithMeterProvider sets where metrics are recorded.
// Default: otel.GetMeterProvider().
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(m *Materializer) {
		m.meterProvider = mp
	}
}

// Materializer renders speech service payloads of one audio format.
// It is safe for concurrent use.
type Materializer struct {
	format        audio.Format
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	metrics       *Metrics
}

// New returns a Materializer for payloads in format f.
func New(f audio.Format, opts ...Option) (*Materializer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	m := &Materializer{format: f}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.meterProvider == nil {
		m.meterProvider = otel.GetMeterProvider()
	}

	met, err := NewMetrics(m.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	m.metrics = met

	return m, nil
}

// Format is the audio format payloads are interpreted in.
func (m *Materializer) Format() audio.Format { return m.format }

// Materialize decodes encoded and renders it as a WAV file and a playback
// buffer. Malformed base64 yields an error wrapping
// payload.ErrMalformedInput and no partial result.
func (m *Materializer) Materialize(ctx context.Context, encoded string) (*Rendition, error) {
	raw, err := payload.Decode(encoded)
	if err != nil {
		m.metrics.recordStatus(ctx, StatusMalformed)
		m.logger.DebugContext(ctx, "pcmwav: rejecting payload",
			"encodedLen", len(encoded),
			"err", err,
		)
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	r, err := m.render(ctx, raw)
	if err != nil {
		m.metrics.recordStatus(ctx, statusOf(err))
		return nil, err
	}

	m.metrics.recordStatus(ctx, StatusOK)
	return r, nil
}

// MaterializePCM renders raw PCM bytes that were already decoded.
func (m *Materializer) MaterializePCM(ctx context.Context, raw []byte) (*Rendition, error) {
	r, err := m.render(ctx, raw)
	if err != nil {
		m.metrics.recordStatus(ctx, statusOf(err))
		return nil, err
	}

	m.metrics.recordStatus(ctx, StatusOK)
	return r, nil
}

func (m *Materializer) render(ctx context.Context, raw []byte) (*Rendition, error) {
	view := pcm.NewView(raw)

	data, err := wav.Encode(view, m.format)
	if err != nil {
		return nil, fmt.Errorf("encoding WAV: %w", err)
	}

	buf, err := playback.Materialize(view, m.format)
	if err != nil {
		return nil, fmt.Errorf("materializing playback buffer: %w", err)
	}

	r := &Rendition{
		WAV:    data,
		Buffer: buf,
		// the view over the output file keeps raw free for the caller
		View:   pcm.NewView(data[wav.HeaderSize:]),
		Format: m.format,
	}

	if w := view.Truncation(); w != nil {
		r.Warnings = append(r.Warnings, w)
	}
	if w := buf.Truncation(); w != nil {
		r.Warnings = append(r.Warnings, w)
	}

	for _, w := range r.Warnings {
		m.metrics.recordTruncation(ctx, w)
		m.logger.WarnContext(ctx, "pcmwav: dropping trailing PCM data",
			"kind", w.Kind.String(),
			"bytes", len(raw),
			"dropped", w.Dropped,
			"sampleRate", m.format.SampleRate,
			"channels", m.format.Channels,
		)
	}

	m.metrics.PCMBytes.Add(ctx, int64(len(raw)))
	m.metrics.AudioDuration.Record(ctx, r.Duration().Seconds())

	m.logger.DebugContext(ctx, "pcmwav: materialized payload",
		"bytes", len(raw),
		"frames", buf.Frames(),
		"duration", r.Duration(),
		"format", m.format.String(),
	)

	return r, nil
}

func statusOf(err error) string {
	switch {
	case errors.Is(err, payload.ErrMalformedInput):
		return StatusMalformed
	case errors.Is(err, wav.ErrDataTooLarge):
		return StatusTooLarge
	default:
		return StatusInvalidParameter
	}
}

// Materialize renders encoded in format f with default logging and
// metrics.
func Materialize(ctx context.Context, encoded string, f audio.Format) (*Rendition, error) {
	m, err := New(f)
	if err != nil {
		return nil, err
	}

	return m.Materialize(ctx, encoded)
}
