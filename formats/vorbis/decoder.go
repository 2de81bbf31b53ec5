// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audpipe/audio"
)

// vorbisReader is the slice of oggvorbis.Reader the stream needs. Tests
// substitute their own implementation.
type vorbisReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// stream adapts oggvorbis to audio.Source. The library already produces
// interleaved float32 in [-1,1], so reads land directly in the caller's
// buffer, trimmed to whole frames.
type stream struct {
	dec      vorbisReader
	rate     int
	channels int
}

func (s *stream) SampleRate() int { return s.rate }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) BufSize() int    { return 4096 }
func (s *stream) Close() error    { return nil }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	aligned := len(dst) - len(dst)%s.channels
	if aligned == 0 {
		return 0, nil
	}

	return s.dec.Read(dst[:aligned])
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg stream: %w", err)
	}

	return &stream{
		dec:      dec,
		rate:     dec.SampleRate(),
		channels: dec.Channels(),
	}, nil
}
