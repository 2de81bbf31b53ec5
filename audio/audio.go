// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Frame is one unit of audio data moving through a pipeline: interleaved
// float32 samples in [-1,1]. A frame's size is its total sample count across
// all channels, not its frame (per-channel) count.
type Frame []float32

// Size returns the total number of samples in the frame.
func (f Frame) Size() int { return len(f) }

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Writer is the sink side of a pipeline stage: it consumes one frame per
// call. Stages compose by wrapping another Writer (see DownmixWriter and
// profiler.ProfilingWriter).
type Writer interface {
	WriteFrame(frame Frame) error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
