// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file encoding and decoding.
//
// This package writes and reads canonical PCM 16-bit WAV files. Decoding
// uses the github.com/go-audio/wav library for chunk handling.
//
// # Encoding
//
// Encode wraps a pcm.View in a 44-byte RIFF/WAVE header:
//
//	v := pcm.NewView(raw)
//	file, err := wav.Encode(v, audio.Format{SampleRate: 24000, Channels: 1})
//	// file is MIME type wav.MIMEType, len(file) == 44 + v.ByteLen()
//
// The PCM bytes are copied verbatim.
// Write streams the identical bytes to an io.Writer, and WriteWAV16 is a
// shortcut for mono []int16 data.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Error Handling
//
//   - audio.ErrInvalidParameter: non-positive sample rate or channel count
//   - ErrDataTooLarge: the data does not fit the 32-bit RIFF size field
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: only 16-bit integer PCM is supported
//   - ErrUnsupportedWavLayout: the fmt chunk is missing or unreadable
//   - ErrUnsupportedWavChunks: no data chunk was found
//
// # File Format
//
//	offset 0  "RIFF", 36+N, "WAVE"
//	offset 12 "fmt ", 16, 1 (PCM), channels, rate, byteRate, blockAlign, 16
//	offset 36 "data", N
//	offset 44 N bytes of little-endian PCM
package wav
