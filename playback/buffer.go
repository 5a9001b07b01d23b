// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/pcm"
)

// Buffer holds de-interleaved, normalized samples ready for an audio engine.
// Every plane has the same length. The caller owns the Buffer once returned.
type Buffer struct {
	// Planes[c][f] is channel c of frame f, in [-1, 1).
	Planes     [][]float32
	SampleRate int

	truncation *pcm.TruncatedSampleWarning
}

// Channels is the number of planes.
func (b *Buffer) Channels() int { return len(b.Planes) }

// Frames is the length of each plane.
func (b *Buffer) Frames() int {
	if len(b.Planes) == 0 {
		return 0
	}
	return len(b.Planes[0])
}

// Format describes the buffer.
func (b *Buffer) Format() audio.Format {
	return audio.Format{SampleRate: b.SampleRate, Channels: b.Channels()}
}

// Duration is the play time of the buffer.
func (b *Buffer) Duration() time.Duration {
	return b.Format().Duration(b.Frames())
}

// Channel returns plane c, or nil when c is out of range.
func (b *Buffer) Channel(c int) []float32 {
	if c < 0 || c >= len(b.Planes) {
		return nil
	}
	return b.Planes[c]
}

// Truncation reports the samples dropped because they did not fill a
// whole frame, or nil.
func (b *Buffer) Truncation() *pcm.TruncatedSampleWarning { return b.truncation }

// Interleaved returns the samples in frame order: frame f, channel c at
// index f*Channels()+c.
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, frames*channels)

	for c, plane := range b.Planes {
		for f, s := range plane {
			out[f*channels+c] = s
		}
	}

	return out
}

// FloatBuffer exposes the interleaved samples as a go-audio buffer.
func (b *Buffer) FloatBuffer() *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format:         b.Format().GoAudio(),
		Data:           b.Interleaved(),
		SourceBitDepth: 16,
	}
}

// Source streams the buffer as interleaved samples for engines that pull.
// Each call returns an independent reader positioned at the first frame.
func (b *Buffer) Source() audio.Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf   *Buffer
	frame int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return s.buf.Frames() * s.buf.Channels() }
func (s *bufferSource) Close() error    { return nil }

// ReadSamples only ever writes whole frames.
func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	remaining := s.buf.Frames() - s.frame
	if remaining <= 0 || channels == 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	if frames == 0 {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, audio.ErrInvalidDstSize
	}

	for f := range frames {
		for c, plane := range s.buf.Planes {
			dst[f*channels+c] = plane[s.frame+f]
		}
	}
	s.frame += frames

	if s.frame == s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
