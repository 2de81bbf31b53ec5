// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/audpipe/internal/audiotest"
)

func TestNewPump_Validation(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 100)
	sink := &audiotest.CollectWriter{}

	if _, err := NewPump(src, sink, time.Second, 0, nil); !errors.Is(err, ErrInvalidFrameSize) {
		t.Errorf("NewPump(frameSize=0) error = %v, want ErrInvalidFrameSize", err)
	}

	// Interval below one profiler chunk makes the stream parameters
	// degenerate.
	if _, err := NewPump(src, sink, time.Millisecond, 256, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewPump(interval=1ms) error = %v, want ErrInvalidConfig", err)
	}
}

func TestPump_TransfersWholeStream(t *testing.T) {
	t.Parallel()

	const totalSamples = 10000

	src := audiotest.NewConstantSource(8000, 1, totalSamples, 0.25)
	sink := &audiotest.CollectWriter{}

	pump, err := NewPump(src, sink, time.Second, 1024, nil)
	if err != nil {
		t.Fatalf("NewPump() error = %v", err)
	}

	if err := pump.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if sink.Samples != totalSamples {
		t.Errorf("sink received %d samples, want %d", sink.Samples, totalSamples)
	}

	for i, f := range sink.Frames {
		for j, v := range f {
			if v != 0.25 {
				t.Fatalf("frame %d sample %d = %v, want 0.25", i, j, v)
			}
		}
	}
}

func TestPump_PreservesFrameOrder(t *testing.T) {
	t.Parallel()

	// Ramp source: sample i has value i, so any reordering is visible in
	// the concatenated output.
	const totalSamples = 5000

	src := audiotest.NewMockSource(8000, 1, totalSamples, func(sample, _ int) float32 {
		return float32(sample)
	})
	sink := &audiotest.CollectWriter{}

	pump, err := NewPump(src, sink, time.Second, 512, nil)
	if err != nil {
		t.Fatalf("NewPump() error = %v", err)
	}

	if err := pump.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	idx := 0
	for _, f := range sink.Frames {
		for _, v := range f {
			if v != float32(idx) {
				t.Fatalf("sample %d out of order: got %v", idx, v)
			}
			idx++
		}
	}

	if idx != totalSamples {
		t.Errorf("received %d samples, want %d", idx, totalSamples)
	}
}

func TestPump_SinkFailureStopsRun(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("device gone")
	src := audiotest.NewSilentSource(8000, 1, 100000)
	sink := &audiotest.FailAfterWriter{N: 3, FailErr: sinkErr}

	pump, err := NewPump(src, sink, time.Second, 256, nil)
	if err != nil {
		t.Fatalf("NewPump() error = %v", err)
	}

	err = pump.Run()
	if !errors.Is(err, sinkErr) {
		t.Fatalf("Run() error = %v, want wrapped sink error", err)
	}

	if len(sink.Frames) != 3 {
		t.Errorf("sink accepted %d frames before failing, want 3", len(sink.Frames))
	}
}
