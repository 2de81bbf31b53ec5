// SPDX-License-Identifier: EPL-2.0

// Package audpipe instruments audio pipelines: it measures the moving-average
// processing speed (samples per second per channel) of a stream of
// variably-sized frames without perturbing the timing it measures.
//
// # Components
//
// The building blocks, leaves first:
//
//   - profiler.Profiler: the core estimator. A fixed ring of 10 ms chunks
//     reconciles arbitrary frame sizes against a quantized sliding window,
//     with O(1) updates and no allocation after construction.
//   - profiler.ProfilingWriter: wraps any frame sink, times each write with
//     the monotonic clock and feeds the profiler it owns.
//   - profiler.RateLimiter: throttles how often a reporting path may emit
//     the measured average.
//   - pipeline.Queue: blocking packet FIFO for producer/consumer hand-off;
//     the pipeline's only cross-thread synchronization point.
//   - pipeline.Pump: streams a Source into a Writer across the queue with
//     throttled throughput reporting.
//   - formats/{wav,mp3,vorbis,aiff}: codec-backed sources (and a WAV sink)
//     that feed and terminate pipelines.
//
// # Quick Start
//
// The simplest way to measure a transfer is Meter:
//
//	// Decode an audio file
//	file, _ := os.Open("audio.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// Encode it back out, measuring sink throughput over the last 10s
//	out, _ := os.Create("copy.wav")
//	sink := wav.NewSink(out, src.SampleRate(), src.Channels())
//	defer sink.Close()
//
//	avg, err := audpipe.Meter(src, sink, 10*time.Second, 4096)
//	fmt.Printf("sink speed: %.0f samples/sec per channel\n", avg)
//
// A stream keeps up with real time when the measured speed stays at or above
// the stream's sample rate.
//
// # Custom Pipelines
//
// For more control, compose the stages yourself. Writers decorate each
// other, so measurement can be attached to any stage:
//
//	sink := wav.NewSink(out, 44100, 1)
//	mono := audio.NewDownmixWriter(sink, 2)
//	prof := profiler.NewProfilingWriter(mono, 2, 44100, 10*time.Second)
//
//	// drive prof with frames; read prof.Avg() from the same goroutine
//
// The profiler is deliberately single-owner and lock-free: hand frames
// between goroutines with pipeline.Queue, never share a Profiler.
//
// # Format Decoders
//
// Each format has its own decoder returning an audio.Source:
//
//	wav.Decoder{}, mp3.Decoder{}, vorbis.Decoder{}, aiff.Decoder{}
//
// Decoders can be registered in an audio.Registry to pick one by file
// extension; see examples/meter for a complete program.
package audpipe
