package audio

import "io"

// frameSource emits frames of a constant value, one frame per call.
type frameSource struct {
	sampleRate int
	channels   int
	frames     int
	value      float32
}

func (s *frameSource) SampleRate() int { return s.sampleRate }
func (s *frameSource) Channels() int   { return s.channels }
func (s *frameSource) BufSize() int    { return s.channels }
func (s *frameSource) Close() error    { return nil }

func (s *frameSource) ReadSamples(dst []float32) (int, error) {
	if s.frames == 0 {
		return 0, io.EOF
	}
	if len(dst) < s.channels {
		return 0, ErrInvalidDstSize
	}

	for c := range s.channels {
		dst[c] = s.value
	}
	s.frames--

	return s.channels, nil
}

// stubDecoder reads nothing and hands back a one frame source in its format.
type stubDecoder struct {
	format Format
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return &frameSource{sampleRate: d.format.SampleRate, channels: d.format.Channels, frames: 1}, nil
}

// failingDecoder always returns an error
type failingDecoder struct {
	err error
}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, d.err
}
