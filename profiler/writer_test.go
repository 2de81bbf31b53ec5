// SPDX-License-Identifier: EPL-2.0

package profiler

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/audpipe/audio"
)

// stepClock returns times a fixed step apart, so each timed write observes a
// deterministic elapsed duration.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

// recordWriter collects delegated frames and optionally fails.
type recordWriter struct {
	frames []audio.Frame
	err    error
}

func (w *recordWriter) WriteFrame(frame audio.Frame) error {
	if w.err != nil {
		return w.err
	}

	cp := make(audio.Frame, len(frame))
	copy(cp, frame)
	w.frames = append(w.frames, cp)

	return nil
}

func TestProfilingWriter_DelegatesAndProfiles(t *testing.T) {
	t.Parallel()

	rec := &recordWriter{}
	w := NewProfilingWriter(rec, testChannels, testRate, testInterval)
	if !w.Valid() {
		t.Fatal("NewProfilingWriter() produced invalid profiler")
	}

	// Each write appears to take exactly one second.
	clock := &stepClock{t: time.Unix(0, 0), step: time.Second}
	w.now = clock.Now

	// 50 samples per simulated second: one full chunk per write.
	frame := make(audio.Frame, 50)

	if err := w.WriteFrame(frame); err != nil {
		t.Fatalf("WriteFrame() error = %v", err)
	}

	if len(rec.frames) != 1 || rec.frames[0].Size() != 50 {
		t.Fatalf("delegate saw %d frames, want 1 frame of 50 samples", len(rec.frames))
	}

	if got := w.Avg(); got != 50 {
		t.Errorf("Avg() = %v, want 50", got)
	}
}

func TestProfilingWriter_ErrorPropagatesUnprofiled(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("sink is full")
	rec := &recordWriter{err: sinkErr}
	w := NewProfilingWriter(rec, testChannels, testRate, testInterval)

	clock := &stepClock{t: time.Unix(0, 0), step: time.Second}
	w.now = clock.Now

	err := w.WriteFrame(make(audio.Frame, 50))
	if err != sinkErr {
		t.Fatalf("WriteFrame() error = %v, want delegate error unchanged", err)
	}

	if got := w.Avg(); got != 0 {
		t.Errorf("Avg() = %v after failed write, want 0", got)
	}

	// A later successful write must start from an untouched ring.
	rec.err = nil
	if err := w.WriteFrame(make(audio.Frame, 50)); err != nil {
		t.Fatalf("WriteFrame() error = %v", err)
	}

	if got := w.Avg(); got != 50 {
		t.Errorf("Avg() = %v, want 50", got)
	}
}
