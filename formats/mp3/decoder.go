// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audpipe/audio"
)

// pcmReader is the slice of gomp3.Decoder the stream needs. Tests substitute
// their own implementation.
type pcmReader interface {
	io.Reader
	SampleRate() int
}

// stream adapts go-mp3's byte-oriented output to audio.Source. The library
// emits 16-bit little-endian PCM, always interleaved stereo.
type stream struct {
	dec  pcmReader
	rate int
	raw  []byte
}

func (s *stream) SampleRate() int { return s.rate }
func (s *stream) Channels() int   { return 2 }
func (s *stream) BufSize() int    { return 4096 }
func (s *stream) Close() error    { return nil }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * 2 // two bytes per sample
	if cap(s.raw) < want {
		s.raw = make([]byte, want)
	}
	s.raw = s.raw[:want]

	n, err := s.dec.Read(s.raw)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.raw[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &stream{
		dec:  dec,
		rate: dec.SampleRate(),
	}, nil
}
