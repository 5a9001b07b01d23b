// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/wav"
	"github.com/ik5/pcmwav/internal/audiotest"
	"github.com/ik5/pcmwav/pcm"
)

func TestMaterialize_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        []byte
		format     audio.Format
		wantPlanes [][]float32
	}{
		{
			name:       "empty",
			raw:        nil,
			format:     audio.SpeechFormat,
			wantPlanes: [][]float32{{}},
		},
		{
			name:       "minimum sample",
			raw:        []byte{0x00, 0x80},
			format:     audio.SpeechFormat,
			wantPlanes: [][]float32{{-1}},
		},
		{
			name:       "maximum sample",
			raw:        []byte{0xff, 0x7f},
			format:     audio.SpeechFormat,
			wantPlanes: [][]float32{{32767.0 / 32768.0}},
		},
		{
			name:       "odd length drops last byte",
			raw:        []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0xc0, 0x01},
			format:     audio.SpeechFormat,
			wantPlanes: [][]float32{{0, 0.5, -0.5}},
		},
		{
			name:   "stereo de-interleave",
			raw:    audiotest.PCM(0, 16384, -16384, -32768),
			format: audio.Format{SampleRate: 44100, Channels: 2},
			wantPlanes: [][]float32{
				{0, -0.5},
				{0.5, -1},
			},
		},
		{
			name:   "three channels",
			raw:    audiotest.PCM(1, 2, 3, 4, 5, 6),
			format: audio.Format{SampleRate: 8000, Channels: 3},
			wantPlanes: [][]float32{
				{1.0 / 32768, 4.0 / 32768},
				{2.0 / 32768, 5.0 / 32768},
				{3.0 / 32768, 6.0 / 32768},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, err := Materialize(pcm.NewView(tt.raw), tt.format)
			if err != nil {
				t.Fatalf("Materialize() error = %v", err)
			}

			if buf.SampleRate != tt.format.SampleRate {
				t.Errorf("SampleRate = %d, want %d", buf.SampleRate, tt.format.SampleRate)
			}

			assertPlanes(t, buf, tt.wantPlanes)
		})
	}
}

func TestMaterialize_PartialFrame(t *testing.T) {
	t.Parallel()

	v := pcm.NewView(audiotest.PCM(1, 2, 3, 4, 5))
	buf, err := Materialize(v, audio.Format{SampleRate: 24000, Channels: 2})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if buf.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", buf.Frames())
	}

	w := buf.Truncation()
	if w == nil {
		t.Fatal("Truncation() = nil, want partial frame warning")
	}
	if w.Kind != pcm.PartialFrame || w.Total != 5 || w.Dropped != 1 {
		t.Errorf("Truncation() = %+v, want PartialFrame 5/1", *w)
	}
}

func TestMaterialize_WholeFramesNoWarning(t *testing.T) {
	t.Parallel()

	buf, err := Materialize(pcm.NewView(audiotest.PCM(1, 2, 3, 4)), audio.Format{SampleRate: 24000, Channels: 2})
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if w := buf.Truncation(); w != nil {
		t.Errorf("Truncation() = %v, want nil", w)
	}
}

func TestMaterialize_InvalidFormat(t *testing.T) {
	t.Parallel()

	formats := []audio.Format{
		{SampleRate: 0, Channels: 1},
		{SampleRate: 24000, Channels: 0},
		{SampleRate: -1, Channels: 1},
		{SampleRate: 24000, Channels: -2},
	}

	for _, f := range formats {
		buf, err := Materialize(pcm.NewView(audiotest.PCM(1, 2)), f)
		if !errors.Is(err, audio.ErrInvalidParameter) {
			t.Errorf("Materialize(%v) error = %v, want ErrInvalidParameter", f, err)
		}
		if buf != nil {
			t.Errorf("Materialize(%v) returned a buffer on error", f)
		}
	}
}

func TestMaterialize_FullRange(t *testing.T) {
	t.Parallel()

	buf, err := Materialize(pcm.NewView(audiotest.FullRangePCM()), audio.SpeechFormat)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	mono := buf.Channel(0)
	if len(mono) != 1<<16 {
		t.Fatalf("len = %d, want %d", len(mono), 1<<16)
	}

	for i, s := range mono {
		want := float32(i+math.MinInt16) / 32768
		if s != want {
			t.Fatalf("sample %d = %v, want %v", i, s, want)
		}
		if s < -1 || s >= 1 {
			t.Fatalf("sample %d = %v outside [-1, 1)", i, s)
		}
	}
}

// The WAV written for a payload and the buffer built for preview must
// carry the same audio.
func TestMaterialize_MatchesWAVDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    []byte
		format audio.Format
	}{
		{"empty mono", nil, audio.SpeechFormat},
		{"single sample", audiotest.PCM(-32768), audio.SpeechFormat},
		{"odd length", []byte{1, 2, 3, 4, 5, 6, 7}, audio.SpeechFormat},
		{"speech tone", audiotest.SpeechPCM(0.25), audio.SpeechFormat},
		{"full range", audiotest.FullRangePCM(), audio.Format{SampleRate: 48000, Channels: 1}},
		{
			"stereo",
			audiotest.InterleavedPCM(2, 1000, func(frame, channel int) int16 {
				return audiotest.Sine(44100, float64(220*(channel+1)), frame)
			}),
			audio.Format{SampleRate: 44100, Channels: 2},
		},
		{"stereo partial frame", audiotest.PCM(10, -10, 20, -20, 30), audio.Format{SampleRate: 22050, Channels: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := pcm.NewView(tt.raw)

			direct, err := Materialize(v, tt.format)
			if err != nil {
				t.Fatalf("Materialize() error = %v", err)
			}

			data, err := wav.Encode(v, tt.format)
			if err != nil {
				t.Fatalf("wav.Encode() error = %v", err)
			}

			src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			decoded, err := FromSource(src)
			if err != nil {
				t.Fatalf("FromSource() error = %v", err)
			}

			if decoded.SampleRate != direct.SampleRate {
				t.Errorf("SampleRate = %d, want %d", decoded.SampleRate, direct.SampleRate)
			}

			assertPlanes(t, decoded, direct.Planes)

			if (direct.Truncation() == nil) != (decoded.Truncation() == nil) {
				t.Errorf("Truncation() = %v, want %v", decoded.Truncation(), direct.Truncation())
			}
		})
	}
}

func TestFromSource_UnalignedReads(t *testing.T) {
	t.Parallel()

	const frames = 100

	waveform := func(frame, channel int) int16 {
		return int16(frame*10 - channel*3)
	}

	// chunks of 7 samples never line up with 3-channel frames
	src := audiotest.NewMockSource(16000, 3, frames, waveform).WithChunk(7)

	buf, err := FromSource(src)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if buf.Frames() != frames || buf.Channels() != 3 {
		t.Fatalf("got %d frames x %d channels, want %d x 3", buf.Frames(), buf.Channels(), frames)
	}

	want, err := Materialize(
		pcm.NewView(audiotest.InterleavedPCM(3, frames, waveform)),
		audio.Format{SampleRate: 16000, Channels: 3},
	)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	assertPlanes(t, buf, want.Planes)
}

func TestFromSource_InvalidFormat(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(0, 1, 10, func(int, int) int16 { return 0 })

	if _, err := FromSource(src); !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("FromSource() error = %v, want ErrInvalidParameter", err)
	}
}

func assertPlanes(t *testing.T, buf *Buffer, want [][]float32) {
	t.Helper()

	if buf.Channels() != len(want) {
		t.Fatalf("Channels() = %d, want %d", buf.Channels(), len(want))
	}

	for c := range want {
		got := buf.Channel(c)
		if len(got) != len(want[c]) {
			t.Fatalf("channel %d: len = %d, want %d", c, len(got), len(want[c]))
		}

		for i := range want[c] {
			if got[i] != want[c][i] {
				t.Fatalf("channel %d sample %d = %v, want %v", c, i, got[i], want[c][i])
			}
		}
	}
}

func BenchmarkMaterialize_Mono(b *testing.B) {
	v := pcm.NewView(audiotest.SpeechPCM(5))

	b.ReportAllocs()
	b.SetBytes(int64(v.ByteLen()))

	for b.Loop() {
		if _, err := Materialize(v, audio.SpeechFormat); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaterialize_Stereo(b *testing.B) {
	raw := audiotest.InterleavedPCM(2, 48000, func(frame, channel int) int16 {
		return audiotest.Sine(48000, 440, frame+channel)
	})
	v := pcm.NewView(raw)
	f := audio.Format{SampleRate: 48000, Channels: 2}

	b.ReportAllocs()
	b.SetBytes(int64(len(raw)))

	for b.Loop() {
		if _, err := Materialize(v, f); err != nil {
			b.Fatal(err)
		}
	}
}

func TestFromSource_SineRereadAfterReset(t *testing.T) {
	t.Parallel()

	const (
		rate   = 24000
		frames = 2400
	)

	src := audiotest.NewSineSource(rate, 2, frames, 440)

	first, err := FromSource(src)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if first.Frames() != frames || first.Channels() != 2 || first.SampleRate != rate {
		t.Fatalf("got %d frames x %d channels at %d Hz", first.Frames(), first.Channels(), first.SampleRate)
	}

	for f := range frames {
		want := float32(audiotest.Sine(rate, 440, f)) / 32768
		if first.Planes[0][f] != want || first.Planes[1][f] != want {
			t.Fatalf("frame %d = (%v, %v), want %v", f, first.Planes[0][f], first.Planes[1][f], want)
		}
	}

	// a drained source reads empty until it is reset
	empty, err := FromSource(src)
	if err != nil {
		t.Fatalf("FromSource() on drained source error = %v", err)
	}
	if empty.Frames() != 0 {
		t.Errorf("drained source gave %d frames, want 0", empty.Frames())
	}

	src.Reset()

	again, err := FromSource(src)
	if err != nil {
		t.Fatalf("FromSource() after Reset error = %v", err)
	}

	assertPlanes(t, again, first.Planes)
}
