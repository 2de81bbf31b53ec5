// SPDX-License-Identifier: EPL-2.0

package audiotest

import "github.com/ik5/audpipe/audio"

// CollectWriter is a frame sink that records everything written to it.
type CollectWriter struct {
	Frames  []audio.Frame
	Samples int
	Err     error // returned by WriteFrame when set
}

func (w *CollectWriter) WriteFrame(frame audio.Frame) error {
	if w.Err != nil {
		return w.Err
	}

	cp := make(audio.Frame, len(frame))
	copy(cp, frame)
	w.Frames = append(w.Frames, cp)
	w.Samples += len(frame)

	return nil
}

// FailAfterWriter delegates to CollectWriter until N frames have been
// written, then fails every call with Err.
type FailAfterWriter struct {
	CollectWriter
	N       int
	FailErr error
}

func (w *FailAfterWriter) WriteFrame(frame audio.Frame) error {
	if len(w.Frames) >= w.N {
		return w.FailErr
	}

	return w.CollectWriter.WriteFrame(frame)
}
