package audio

import (
	"errors"
	"io"
)

// collectWriter records every frame written to it.
type collectWriter struct {
	frames []Frame
	err    error
}

func (w *collectWriter) WriteFrame(frame Frame) error {
	if w.err != nil {
		return w.err
	}

	cp := make(Frame, len(frame))
	copy(cp, frame)
	w.frames = append(w.frames, cp)

	return nil
}

// stubSource is a minimal Source for registry tests.
type stubSource struct {
	sampleRate int
	channels   int
}

func (s *stubSource) SampleRate() int { return s.sampleRate }
func (s *stubSource) Channels() int   { return s.channels }
func (s *stubSource) BufSize() int    { return 4096 }
func (s *stubSource) Close() error    { return nil }

func (s *stubSource) ReadSamples(dst []float32) (int, error) {
	return 0, io.EOF
}

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return &stubSource{sampleRate: 44100, channels: 2}, nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}
