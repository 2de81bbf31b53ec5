package audio

import "fmt"

// DownmixWriter is a pipeline stage that folds interleaved multi-channel
// frames down to mono by averaging channels, then hands the mono frame to the
// wrapped Writer. With channels == 1 frames pass through untouched.
//
// It reuses a single scratch frame between calls, so the stage itself does
// not allocate on the hot path once warmed up. The mono frame handed to the
// inner writer is only valid until the next WriteFrame call.
type DownmixWriter struct {
	dst      Writer
	channels int
	mono     Frame
}

func NewDownmixWriter(dst Writer, channels int) *DownmixWriter {
	return &DownmixWriter{
		dst:      dst,
		channels: channels,
		mono:     make(Frame, 0, 4096),
	}
}

func (w *DownmixWriter) Channels() int { return 1 }

func (w *DownmixWriter) WriteFrame(frame Frame) error {
	if w.channels == 1 {
		// Pass-through: already mono
		err := w.dst.WriteFrame(frame)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	if len(frame)%w.channels != 0 {
		return ErrFrameNotAligned
	}

	frames := len(frame) / w.channels

	// Grow scratch buffer if needed (but don't shrink to avoid thrashing)
	if cap(w.mono) < frames {
		w.mono = make(Frame, frames)
	}
	w.mono = w.mono[:frames]

	invChannels := float32(1.0) / float32(w.channels)

	// Unrolled loop for common cases
	switch w.channels {
	case 2: // Stereo (most common)
		for f := 0; f < frames; f++ {
			idx := f << 1 // f * 2
			w.mono[f] = (frame[idx] + frame[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := 0; f < frames; f++ {
			idx := f << 2 // f * 4
			sum := frame[idx] + frame[idx+1] + frame[idx+2] + frame[idx+3]
			w.mono[f] = sum * 0.25
		}
	default: // Generic path
		for f := 0; f < frames; f++ {
			sum := float32(0)
			baseIdx := f * w.channels
			for c := 0; c < w.channels; c++ {
				sum += frame[baseIdx+c]
			}
			w.mono[f] = sum * invChannels
		}
	}

	err := w.dst.WriteFrame(w.mono)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
