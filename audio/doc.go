// SPDX-License-Identifier: EPL-2.0

// Package audio defines the interfaces that audpipe pipelines are built
// from: pull-side Sources (decoders), push-side Writers (sinks and stages),
// the Frame unit of hand-off, and a Registry for format decoders.
//
// # Sources and Writers
//
// A Source produces interleaved float32 samples in [-1.0, 1.0]:
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// A Writer consumes one Frame per call. Stages compose by decoration:
//
//	sink := wav.NewSink(file, 44100, 1)
//	mono := audio.NewDownmixWriter(sink, 2)
//	prof := profiler.NewProfilingWriter(mono, 2, 44100, 10*time.Second)
//
// Every frame written to prof is downmixed, written to the WAV sink, and its
// processing time fed into the moving-average throughput estimator.
//
// # Registry
//
// Decoders register under a format key so callers can pick one by file
// extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
