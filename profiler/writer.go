// SPDX-License-Identifier: EPL-2.0

package profiler

import (
	"time"

	"github.com/ik5/audpipe/audio"
)

// ProfilingWriter decorates an audio.Writer: each WriteFrame is timed with
// the monotonic clock and reported to an owned Profiler, so the wrapped
// stage's throughput can be read without the stage knowing it is measured.
type ProfilingWriter struct {
	writer   audio.Writer
	profiler *Profiler

	now func() time.Time
}

func NewProfilingWriter(writer audio.Writer, channels, sampleRate int, interval time.Duration) *ProfilingWriter {
	return &ProfilingWriter{
		writer:   writer,
		profiler: NewProfiler(channels, sampleRate, interval),
		now:      time.Now,
	}
}

// Valid reports whether the owned profiler was successfully constructed.
func (w *ProfilingWriter) Valid() bool { return w.profiler.Valid() }

// WriteFrame delegates to the wrapped writer and profiles the elapsed time.
// A delegate failure propagates unchanged and is not profiled.
func (w *ProfilingWriter) WriteFrame(frame audio.Frame) error {
	start := w.now()

	err := w.writer.WriteFrame(frame)
	if err != nil {
		return err
	}

	w.profiler.AddFrame(frame.Size(), w.now().Sub(start))

	return nil
}

// Avg returns the wrapped stage's moving-average speed in samples per second
// per channel.
func (w *ProfilingWriter) Avg() float64 {
	return w.profiler.MovingAvg()
}
