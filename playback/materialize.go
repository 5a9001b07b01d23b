// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/pcm"
	"github.com/ik5/pcmwav/utils"
)

// Materialize de-interleaves v into f.Channels planes of normalized floats.
//
// Samples past the last whole frame are dropped and reported by
// Buffer.Truncation; this is the same rule a WAV reader applies to the
// file wav.Encode writes, so preview and saved file have equal length.
func Materialize(v pcm.View, f audio.Format) (*Buffer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	channels := f.Channels
	frames, _ := v.Frames(channels)

	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
	}

	if channels == 1 {
		mono := planes[0]
		for i := range mono {
			mono[i] = utils.Int16ToFloat32(v.At(i))
		}
	} else {
		for fr := range frames {
			base := fr * channels
			for c := range channels {
				planes[c][fr] = utils.Int16ToFloat32(v.At(base + c))
			}
		}
	}

	return &Buffer{
		Planes:     planes,
		SampleRate: f.SampleRate,
		truncation: v.FrameTruncation(channels),
	}, nil
}

// FromSource drains src into a Buffer. Trailing samples that do not fill a
// frame are dropped the same way Materialize drops them. src is not closed.
func FromSource(src audio.Source) (*Buffer, error) {
	f := audio.Format{SampleRate: src.SampleRate(), Channels: src.Channels()}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	bufSize := src.BufSize()
	if bufSize < f.Channels {
		bufSize = 4096
	}
	// keep reads frame aligned for sources that require it
	bufSize -= bufSize % f.Channels
	if bufSize == 0 {
		bufSize = f.Channels
	}

	var interleaved []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		interleaved = append(interleaved, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	frames := len(interleaved) / f.Channels
	planes := make([][]float32, f.Channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
	}

	for fr := range frames {
		for c := range f.Channels {
			planes[c][fr] = interleaved[fr*f.Channels+c]
		}
	}

	out := &Buffer{Planes: planes, SampleRate: f.SampleRate}
	if rem := len(interleaved) % f.Channels; rem != 0 {
		out.truncation = &pcm.TruncatedSampleWarning{
			Kind:    pcm.PartialFrame,
			Total:   len(interleaved),
			Dropped: rem,
		}
	}

	return out, nil
}
