// SPDX-License-Identifier: EPL-2.0

// Package profiler measures the throughput of an audio pipeline stage: the
// moving-average number of samples per second (per channel) it processed
// during the last N seconds.
//
// # How it works
//
// Frames passing through a stage have arbitrary sizes, but a sliding average
// needs fixed-size entries. The Profiler therefore quantizes time into
// 10 ms chunks (ChunkDuration) and splits every frame's measured speed across
// the chunks its samples fall into, weighted by sample count. Completed
// chunks enter a fixed ring sized to the configured interval; while the ring
// fills, a cumulative average is reported, and once full, a simple moving
// average with FIFO eviction of the oldest chunk.
//
// The estimator is O(1) per frame, allocation-free after construction, and
// lock-free because it is single-owner: only the goroutine driving the stage
// may call AddFrame and MovingAvg. Cross-thread hand-off belongs to
// pipeline.Queue, not to the profiler.
//
// # Usage
//
//	prof := profiler.NewProfiler(1, 44100, 10*time.Second)
//	if !prof.Valid() {
//	    // degenerate configuration
//	}
//
//	// per processed frame, on the owning goroutine:
//	prof.AddFrame(frame.Size(), elapsed)
//
//	// reporting path, throttled so logging cannot distort the measurement:
//	limiter := profiler.NewRateLimiter(5 * time.Second)
//	if limiter.Allow() {
//	    log.Printf("avg speed: %.0f samples/sec", prof.MovingAvg())
//	}
//
// Most callers use ProfilingWriter instead of driving a Profiler directly:
// it wraps any audio.Writer, times every delegated write and feeds the
// profiler it owns.
package profiler
