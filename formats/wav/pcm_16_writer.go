// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/pcm"
)

const (
	// HeaderSize is the size of the canonical RIFF + fmt + data header.
	HeaderSize = 44

	// MIMEType of the encoded file.
	MIMEType = "audio/wav"

	// Extension for saved files.
	Extension = ".wav"

	formatPCM     = 1
	fmtChunkSize  = 16
	bitsPerSample = 16

	// Bytes counted by the RIFF size field besides the PCM data:
	// "WAVE" + fmt chunk header and body + data chunk header.
	riffOverhead = HeaderSize - 8
)

// Encode wraps the samples of v in a RIFF/WAVE container.
// The result is always HeaderSize + v.ByteLen() bytes long and the data
// chunk holds v.Bytes() verbatim.
func Encode(v pcm.View, f audio.Format) ([]byte, error) {
	header, err := buildHeader(v.ByteLen(), f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+v.ByteLen())
	copy(out, header[:])
	copy(out[HeaderSize:], v.Bytes())

	return out, nil
}

// Write streams the same bytes as Encode to w. Nothing is written when the
// format is rejected.
func Write(w io.Writer, v pcm.View, f audio.Format) error {
	header, err := buildHeader(v.ByteLen(), f)
	if err != nil {
		return err
	}

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if v.ByteLen() == 0 {
		return nil
	}

	if _, err := w.Write(v.Bytes()); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return Write(w, pcm.FromSamples(samples), audio.Format{SampleRate: sampleRate, Channels: 1})
}

func buildHeader(dataSize int, f audio.Format) ([HeaderSize]byte, error) {
	var header [HeaderSize]byte

	if err := f.Validate(); err != nil {
		return header, err
	}

	if int64(dataSize)+riffOverhead > math.MaxUint32 {
		return header, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataSize)
	}

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffOverhead+dataSize))
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.FrameSize()))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	return header, nil
}
