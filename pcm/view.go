// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/audio"
)

// View is a read-only interpretation of raw bytes as signed 16-bit
// little-endian samples. It aliases the bytes it was built from; callers
// must not modify them while the View is in use.
type View struct {
	data    []byte // always even length
	rawLen  int
	dropped int
}

// NewView wraps raw. An odd trailing byte is dropped and reported by
// Truncation.
func NewView(raw []byte) View {
	even := len(raw) &^ 1

	return View{
		data:    raw[:even:even],
		rawLen:  len(raw),
		dropped: len(raw) - even,
	}
}

// FromSamples serializes samples as little-endian PCM and returns a view
// over the result.
func FromSamples(samples []int16) View {
	buf := make([]byte, len(samples)*audio.BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	return NewView(buf)
}

// Len is the sample count: floor(len(raw)/2).
func (v View) Len() int { return len(v.data) / audio.BytesPerSample }

// ByteLen is the number of bytes covered by whole samples.
func (v View) ByteLen() int { return len(v.data) }

// At returns sample i. It panics if i is out of range, like a slice index.
func (v View) At(i int) int16 {
	return int16(binary.LittleEndian.Uint16(v.data[2*i : 2*i+2]))
}

// Bytes returns the even-length prefix of the raw buffer without copying.
// The capacity is clipped so appending never touches the dropped byte.
func (v View) Bytes() []byte { return v.data }

// Samples copies every sample into a new slice.
func (v View) Samples() []int16 {
	out := make([]int16, v.Len())
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(v.data[2*i:]))
	}

	return out
}

// Frames splits the sample count into whole frames of channels samples
// and the remainder that does not fill a frame. channels must be positive.
func (v View) Frames(channels int) (frames, remainder int) {
	n := v.Len()

	return n / channels, n % channels
}

// Truncation reports the odd trailing byte, if there was one.
func (v View) Truncation() *TruncatedSampleWarning {
	if v.dropped == 0 {
		return nil
	}

	return &TruncatedSampleWarning{Kind: OddByteCount, Total: v.rawLen, Dropped: v.dropped}
}

// FrameTruncation reports samples that do not fill a whole frame of
// channels samples, if any. channels must be positive.
func (v View) FrameTruncation(channels int) *TruncatedSampleWarning {
	_, rem := v.Frames(channels)
	if rem == 0 {
		return nil
	}

	return &TruncatedSampleWarning{Kind: PartialFrame, Total: v.Len(), Dropped: rem}
}

// IntBuffer exposes the samples as a go-audio buffer tagged with f.
func (v View) IntBuffer(f audio.Format) *goaudio.IntBuffer {
	data := make([]int, v.Len())
	for i := range data {
		data[i] = int(v.At(i))
	}

	return &goaudio.IntBuffer{
		Format:         f.GoAudio(),
		Data:           data,
		SourceBitDepth: 16,
	}
}
