// SPDX-License-Identifier: EPL-2.0

// Package playback turns PCM into planar float32 buffers for instant
// preview, skipping the round trip through an encoded file.
//
//	buf, err := playback.Materialize(view, audio.SpeechFormat)
//	engine.Play(buf.Planes, buf.SampleRate)
//
// Each int16 sample s becomes s/32768, and interleaved frame f, channel c
// (source index f*channels+c) lands in buf.Planes[c][f]. Samples that do
// not fill the final frame are dropped, never an error.
//
// FromSource builds the same structure from any audio.Source, for example
// the WAV decoder, and Buffer.Source goes the other way for engines that
// pull interleaved samples.
package playback
