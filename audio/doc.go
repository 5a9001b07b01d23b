// SPDX-License-Identifier: EPL-2.0

// Package audio provides the shared vocabulary of the materialization layer.
//
// This package contains:
//   - Format, the caller-supplied sample rate and channel count of raw PCM
//   - Source interface for pull-based float32 sample streams
//   - Decoder interface and a Registry for decoder lookup by format key
//   - ErrInvalidParameter, returned everywhere a Format is rejected
//
// # Format
//
// Raw PCM from the speech service has no header, so the stream description
// always travels next to the bytes:
//
//	f := audio.Format{SampleRate: 24000, Channels: 1}
//	if err := f.Validate(); err != nil {
//	    // errors.Is(err, audio.ErrInvalidParameter)
//	}
//
// SpeechFormat holds the values observed from the speech service.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Both the WAV decoder (formats/wav) and a materialized playback buffer
// (playback.Buffer.Source) implement it, which lets playback engines pull
// samples without caring where they came from.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode(".WAV", file)
//
// Keys are case-insensitive and a leading dot is dropped.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0): an int16 sample s maps to s/32768.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
