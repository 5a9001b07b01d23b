// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
)

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"speech", SpeechFormat, false},
		{"cd stereo", Format{SampleRate: 44100, Channels: 2}, false},
		{"one hertz", Format{SampleRate: 1, Channels: 1}, false},
		{"max channels", Format{SampleRate: 1, Channels: math.MaxUint16}, false},
		{"zero rate", Format{SampleRate: 0, Channels: 1}, true},
		{"negative rate", Format{SampleRate: -8000, Channels: 1}, true},
		{"zero channels", Format{SampleRate: 24000, Channels: 0}, true},
		{"negative channels", Format{SampleRate: 24000, Channels: -1}, true},
		{"too many channels", Format{SampleRate: 8000, Channels: math.MaxUint16 + 1}, true},
		{"rate over uint32", Format{SampleRate: math.MaxUint32 + 1, Channels: 1}, true},
		{"byte rate overflow", Format{SampleRate: math.MaxUint32 / 2, Channels: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.format.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestFormat_Derived(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 48000, Channels: 2}

	if got := f.FrameSize(); got != 4 {
		t.Errorf("FrameSize() = %d, want 4", got)
	}
	if got := f.ByteRate(); got != 192000 {
		t.Errorf("ByteRate() = %d, want 192000", got)
	}
	if got := f.Duration(24000); got != 500*time.Millisecond {
		t.Errorf("Duration(24000) = %v, want 500ms", got)
	}
	if got := (Format{}).Duration(100); got != 0 {
		t.Errorf("zero Format Duration() = %v, want 0", got)
	}
	if got := SpeechFormat.String(); got != "24000 Hz, 1 ch, 16-bit PCM" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormat_GoAudio(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 22050, Channels: 2}
	ga := f.GoAudio()

	if ga.SampleRate != 22050 || ga.NumChannels != 2 {
		t.Errorf("GoAudio() = %+v", *ga)
	}

	if back := FromGoAudio(ga); back != f {
		t.Errorf("FromGoAudio(GoAudio()) = %v, want %v", back, f)
	}

	if got := FromGoAudio(nil); got != (Format{}) {
		t.Errorf("FromGoAudio(nil) = %v, want zero", got)
	}

	if got := FromGoAudio(&goaudio.Format{SampleRate: 8000, NumChannels: 1}); got != (Format{SampleRate: 8000, Channels: 1}) {
		t.Errorf("FromGoAudio() = %v", got)
	}
}
