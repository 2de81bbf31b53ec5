// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/ik5/audpipe/audio"
)

// seekBuffer is an in-memory io.WriteSeeker for encoder tests.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		b.pos = int(offset)
	case io.SeekCurrent:
		b.pos += int(offset)
	case io.SeekEnd:
		b.pos = len(b.data) + int(offset)
	}
	return int64(b.pos), nil
}

func TestSink_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := &seekBuffer{}
	sink := NewSink(buf, 8000, 1)

	frames := []audio.Frame{
		{0, 0.25, 0.5},
		{-0.25, -0.5},
		{1.0, -1.0},
	}

	for i, f := range frames {
		if err := sink.WriteFrame(f); err != nil {
			t.Fatalf("WriteFrame(%d) error = %v", i, err)
		}
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Decode what we just encoded.
	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(buf.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Fatalf("round trip format = %d Hz / %d ch, want 8000 Hz / 1 ch",
			src.SampleRate(), src.Channels())
	}

	out := make([]float32, 7)
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 7 {
		t.Fatalf("ReadSamples() n = %d, want 7", n)
	}

	want := []float32{0, 0.25, 0.5, -0.25, -0.5, 1.0, -1.0}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-3 {
			t.Errorf("out[%d] = %v, want ≈%v", i, out[i], want[i])
		}
	}
}

func TestSink_WriteAfterClose(t *testing.T) {
	t.Parallel()

	sink := NewSink(&seekBuffer{}, 8000, 1)

	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := sink.WriteFrame(audio.Frame{0.1}); err != ErrSinkClosed {
		t.Errorf("WriteFrame() after Close error = %v, want ErrSinkClosed", err)
	}

	// Close is idempotent.
	if err := sink.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}
