// SPDX-License-Identifier: EPL-2.0

package profiler

import "time"

// ChunkDuration is the fixed span of stream time covered by one chunk of the
// sliding window. The window interval is quantized to whole chunks.
const ChunkDuration = 10 * time.Millisecond

// Profiler estimates the moving-average processing speed of a stream of
// variably-sized frames: how many samples per second (per channel) a pipeline
// stage handled during the last interval.
//
// Frames have arbitrary sizes while a moving average needs fixed-size
// entries, so the profiler keeps a ring of equal-duration chunks. Each chunk
// holds the weighted mean speed of ChunkDuration worth of samples; a frame
// contributes to one or more chunks in proportion to how many of its samples
// land in each. While the ring is still filling, the cumulative moving
// average is used; once full, the simple moving average over the last
// numChunks chunks, evicting the oldest chunk per new completion.
//
// A Profiler is owned by exactly one goroutine. It has no internal locking,
// performs no allocation after construction, and never blocks; AddFrame costs
// O(1 + chunks completed by the frame).
type Profiler struct {
	chunkLength int // total interleaved samples per chunk
	numChunks   int // window size in chunks

	// Ring of numChunks+1 slots: the slot at activeChunk accumulates the
	// partially filled chunk, the rest hold finished chunk speeds.
	chunks        []float64
	firstChunk    int
	activeChunk   int
	activeSamples int

	completed int // finished chunks while the window is still growing

	movingAvg float64

	sampleRate  int
	numChannels int

	valid bool
}

// NewProfiler derives the chunk geometry from the stream parameters. The
// returned instance must be checked with Valid before use: degenerate
// parameters (zero channels, zero sample rate, an interval shorter than
// ChunkDuration, or a rate too low to fill a single chunk) leave it inert.
func NewProfiler(channels, sampleRate int, interval time.Duration) *Profiler {
	p := &Profiler{
		sampleRate:  sampleRate,
		numChannels: channels,
	}

	// Chunk capacity counts interleaved samples, so it scales with the
	// channel count: one chunk always spans ChunkDuration of stream time.
	p.chunkLength = int(time.Duration(sampleRate)*ChunkDuration/time.Second) * channels
	p.numChunks = int(interval / ChunkDuration)

	if channels <= 0 || sampleRate <= 0 || p.chunkLength <= 0 || p.numChunks <= 0 {
		return p
	}

	p.chunks = make([]float64, p.numChunks+1)
	p.valid = true

	return p
}

// Valid reports whether construction succeeded. Calling any other method on
// an invalid instance is a caller bug and panics.
func (p *Profiler) Valid() bool { return p.valid }

// AddFrame records that a frame of frameSize interleaved samples took elapsed
// wall-clock time to process. If at least one chunk completes, the published
// moving average is recomputed; otherwise it is left untouched.
//
// A frame with elapsed <= 0 carries no usable rate information and is
// skipped entirely: the ring does not advance and the average is unchanged.
func (p *Profiler) AddFrame(frameSize int, elapsed time.Duration) {
	if !p.valid {
		panic("profiler: AddFrame on invalid instance")
	}

	if elapsed <= 0 {
		return
	}

	frameSpeed := float64(frameSize) * float64(time.Second) / float64(elapsed) / float64(p.numChannels)

	// Weighted split: apportion the frame's speed across chunks by how many
	// of its samples fall into each chunk's remaining capacity.
	remaining := frameSize
	for remaining > 0 {
		take := p.chunkLength - p.activeSamples
		if take > remaining {
			take = remaining
		}

		p.chunks[p.activeChunk] += frameSpeed * float64(take) / float64(p.chunkLength)
		p.activeSamples += take
		remaining -= take

		if p.activeSamples == p.chunkLength {
			p.finishChunk()
		}
	}
}

// finishChunk publishes the completed active chunk into the average and
// opens a fresh one.
func (p *Profiler) finishChunk() {
	finished := p.chunks[p.activeChunk]

	p.activeChunk = (p.activeChunk + 1) % len(p.chunks)
	p.activeSamples = 0

	if p.activeChunk != p.firstChunk {
		// Window still growing: cumulative moving average.
		p.completed++
		p.movingAvg += (finished - p.movingAvg) / float64(p.completed)
	} else {
		// Window full: simple moving average, evicting the oldest chunk.
		evicted := p.chunks[p.firstChunk]
		p.movingAvg += (finished - evicted) / float64(p.numChunks)
		p.firstChunk = (p.firstChunk + 1) % len(p.chunks)
	}

	p.chunks[p.activeChunk] = 0
}

// MovingAvg returns the last published average speed in samples per second
// per channel. Pure read; it reflects completed chunks only, never the
// partial contribution of the chunk currently filling.
func (p *Profiler) MovingAvg() float64 {
	if !p.valid {
		panic("profiler: MovingAvg on invalid instance")
	}

	return p.movingAvg
}

// ChunkLength returns the chunk capacity in interleaved samples.
func (p *Profiler) ChunkLength() int { return p.chunkLength }

// NumChunks returns the window size in chunks.
func (p *Profiler) NumChunks() int { return p.numChunks }
