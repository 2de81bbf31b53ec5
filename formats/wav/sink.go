// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audpipe/audio"
)

// Sink is a frame sink that encodes incoming frames as 16-bit PCM WAV using
// go-audio's encoder. It implements audio.Writer, so it can terminate a
// pipeline and sit under a profiler.ProfilingWriter.
//
// The encoder back-patches the RIFF sizes on Close, so w must be an
// io.WriteSeeker (os.File qualifies) and Close must be called for the file
// to be valid.
type Sink struct {
	enc    *gowav.Encoder
	intBuf *goaudio.IntBuffer
	closed bool
}

func NewSink(w io.WriteSeeker, sampleRate, channels int) *Sink {
	return &Sink{
		enc: gowav.NewEncoder(w, sampleRate, 16, channels, 1),
		intBuf: &goaudio.IntBuffer{
			Data: make([]int, 0, 4096),
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		},
	}
}

func (s *Sink) WriteFrame(frame audio.Frame) error {
	if s.closed {
		return ErrSinkClosed
	}

	if cap(s.intBuf.Data) < len(frame) {
		s.intBuf.Data = make([]int, len(frame))
	}
	s.intBuf.Data = s.intBuf.Data[:len(frame)]

	for i, v := range frame {
		s.intBuf.Data[i] = int(float32ToInt16(v))
	}

	err := s.enc.Write(s.intBuf)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalizes the WAV header. The sink rejects writes afterwards.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.enc.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
