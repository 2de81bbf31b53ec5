// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources and recording sinks shared by
// pipeline and profiling tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource produces a finite stream of generated samples. It satisfies the
// audio.Source interface without importing the audio package.
type MockSource struct {
	rate     int
	channels int
	remain   int // frames left to produce
	pos      int // absolute frame index, drives the generator
	gen      func(frame, channel int) float32
}

func NewMockSource(sampleRate, channels, totalFrames int, gen func(frame, channel int) float32) *MockSource {
	return &MockSource{
		rate:     sampleRate,
		channels: channels,
		remain:   totalFrames,
		gen:      gen,
	}
}

// NewSilentSource produces totalFrames frames of digital silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource produces a sine tone at the given frequency on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	step := 2 * math.Pi * frequency / float64(sampleRate)
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		return float32(math.Sin(step * float64(frame)))
	})
}

// NewConstantSource produces the same value in every sample.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// ReadSamples fills dst with interleaved samples. The read that exhausts the
// stream returns the remaining samples together with io.EOF.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.remain == 0 {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if frames > m.remain {
		frames = m.remain
	}

	n := 0
	for f := 0; f < frames; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[n] = m.gen(m.pos, ch)
			n++
		}
		m.pos++
	}
	m.remain -= frames

	if m.remain == 0 {
		return n, io.EOF
	}

	return n, nil
}
