// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audpipe/audio"
)

// pcmDecoder is the slice of aiff.Decoder the stream needs. Tests substitute
// their own implementation.
type pcmDecoder interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// stream adapts a go-audio AIFF decoder to audio.Source. Only 16-bit PCM
// reaches this point, so the normalization scale is fixed at construction.
type stream struct {
	dec    pcmDecoder
	format *goaudio.Format
	scale  float32
	ints   goaudio.IntBuffer
}

func (s *stream) SampleRate() int { return s.format.SampleRate }
func (s *stream) Channels() int   { return s.format.NumChannels }
func (s *stream) BufSize() int    { return 4096 }
func (s *stream) Close() error    { return nil }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.ints.Data) < len(dst) {
		s.ints.Data = make([]int, len(dst))
	}
	s.ints.Data = s.ints.Data[:len(dst)]
	s.ints.Format = s.format

	n, err := s.dec.PCMBuffer(&s.ints)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.ints.Data[i]) * s.scale
	}

	// A short read with no error means the sound data ended
	if err == nil && n < len(dst) {
		err = io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs random access for FORM chunk scanning
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering aiff input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &stream{
		dec:    dec,
		format: format,
		scale:  1.0 / 32768.0,
	}, nil
}
