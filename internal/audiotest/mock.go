// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
// Values are quantized to the int16 grid so they survive a PCM round trip.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	chunk       int // max samples per ReadSamples call, 0 = no limit
	waveform    func(frame int, channel int) int16
}

// NewMockSource creates a new mock audio source of totalFrames frames.
// waveform returns the int16 sample for a frame and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSineSource creates a mock source that generates a sine wave at 90% scale.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return Sine(sampleRate, frequency, frame)
	})
}

// WithChunk limits every ReadSamples call to at most n samples, which need
// not be a whole number of frames.
func (m *MockSource) WithChunk(n int) *MockSource {
	m.chunk = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

// ReadSamples writes samples in interleaved order; m.generated counts samples.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	total := m.totalFrames * m.channels
	if m.generated >= total {
		return 0, io.EOF
	}

	n := min(len(dst), total-m.generated)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}

	for i := range n {
		idx := m.generated + i
		dst[i] = float32(m.waveform(idx/m.channels, idx%m.channels)) / 32768.0
	}
	m.generated += n

	if m.generated >= total {
		return n, io.EOF
	}

	return n, nil
}

// Sine returns frame of a 90% scale sine at frequency Hz.
func Sine(sampleRate int, frequency float64, frame int) int16 {
	t := float64(frame) / float64(sampleRate)
	return int16(math.Round(0.9 * 32767 * math.Sin(2*math.Pi*frequency*t)))
}

// PCM serializes samples as little-endian 16-bit bytes.
func PCM(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// InterleavedPCM renders frames*channels samples from waveform as PCM bytes.
func InterleavedPCM(channels, frames int, waveform func(frame int, channel int) int16) []byte {
	samples := make([]int16, 0, channels*frames)
	for f := range frames {
		for c := range channels {
			samples = append(samples, waveform(f, c))
		}
	}
	return PCM(samples...)
}

// SpeechPCM is seconds of a 440 Hz mono tone at 24 kHz, shaped like the
// payloads the speech service returns.
func SpeechPCM(seconds float64) []byte {
	frames := int(seconds * 24000)
	return InterleavedPCM(1, frames, func(frame, _ int) int16 {
		return Sine(24000, 440, frame)
	})
}

// FullRangePCM contains every int16 value once, in ascending order.
func FullRangePCM() []byte {
	samples := make([]int16, 0, 1<<16)
	for s := math.MinInt16; s <= math.MaxInt16; s++ {
		samples = append(samples, int16(s))
	}
	return PCM(samples...)
}

// Base64 encodes raw the way the speech service does (standard, padded).
func Base64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
