// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"
)

// BytesPerSample is the width of one 16-bit PCM sample.
const BytesPerSample = 2

// Format is the out-of-band description of a raw PCM stream. Raw PCM
// carries no header, so the caller always has to supply it.
type Format struct {
	SampleRate int
	Channels   int
}

// SpeechFormat is what the speech service emits: 24 kHz mono.
var SpeechFormat = Format{SampleRate: 24000, Channels: 1}

// Validate reports ErrInvalidParameter when f cannot be written into a
// WAV fmt chunk.
func (f Format) Validate() error {
	if f.SampleRate <= 0 || int64(f.SampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, f.SampleRate)
	}

	if f.Channels <= 0 || f.Channels > math.MaxUint16 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidParameter, f.Channels)
	}

	// byteRate is a uint32 field as well.
	if int64(f.SampleRate)*int64(f.FrameSize()) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate overflow (%d Hz x %d channels)",
			ErrInvalidParameter, f.SampleRate, f.Channels)
	}

	return nil
}

// FrameSize is the block alignment: bytes per frame.
func (f Format) FrameSize() int { return f.Channels * BytesPerSample }

// ByteRate is bytes per second of audio.
func (f Format) ByteRate() int { return f.SampleRate * f.FrameSize() }

// Duration returns the play time of frames at f.SampleRate.
func (f Format) Duration(frames int) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}

	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

// GoAudio converts f to the go-audio representation.
func (f Format) GoAudio() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: f.Channels,
		SampleRate:  f.SampleRate,
	}
}

// FromGoAudio is the inverse of GoAudio. A nil format yields the zero Format.
func FromGoAudio(f *goaudio.Format) Format {
	if f == nil {
		return Format{}
	}

	return Format{SampleRate: f.SampleRate, Channels: f.NumChannels}
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, 16-bit PCM", f.SampleRate, f.Channels)
}
