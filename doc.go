// SPDX-License-Identifier: EPL-2.0

// Package pcmwav turns the base64 audio returned by a text-to-speech
// service into something that can be saved and played.
//
// The speech service answers with raw 16-bit little-endian PCM, base64
// encoded, without any header. A Materializer decodes that payload once
// and derives two independent outputs from the same samples:
//   - a canonical RIFF/WAVE file (see formats/wav)
//   - a de-interleaved float32 buffer for an audio engine (see playback)
//
// Samples are never resampled or re-encoded. The sample rate and channel
// count are not part of the payload, so the caller supplies them through
// an audio.Format; audio.SpeechFormat (24 kHz mono) is what the service
// has been observed to emit.
//
// # Quick Start
//
//	m, err := pcmwav.New(audio.SpeechFormat)
//	if err != nil {
//	    return err
//	}
//
//	r, err := m.Materialize(ctx, encoded)
//	if err != nil {
//	    return err // malformed base64 or a format that cannot be written
//	}
//
//	os.WriteFile(pcmwav.DownloadName("Kore"), r.WAV, 0o644)
//	engine.Play(r.Buffer.Source())
//
// # Warnings
//
// A payload with an odd byte count, or with samples that do not fill the
// last frame, is still rendered. The dropped bytes are listed in
// Rendition.Warnings, logged at warn level, and counted in the
// pcmwav.truncations metric.
//
// # Observability
//
// Materializer logs through log/slog and records OpenTelemetry metrics on
// the meter provider given by WithMeterProvider, or the global one.
//
// # Lower Level Packages
//
//   - payload: base64 decoding with offset reporting
//   - pcm: the sample view shared by both outputs
//   - formats/wav: WAV encoding, and a decoder for reading files back
//   - playback: planar float buffers
//   - audio: Format, the Source interface, and a decoder registry
package pcmwav
