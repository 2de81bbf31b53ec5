// SPDX-License-Identifier: EPL-2.0

// Package pipeline provides the cross-thread plumbing around the profiler:
// a blocking packet Queue for producer/consumer hand-off and a Pump that
// streams an audio.Source into an audio.Writer while measuring the sink's
// throughput.
//
// The Queue is the only blocking primitive in the pipeline. Everything the
// profiler touches stays on the consumer goroutine; ownership of frames is
// transferred by message passing, never by sharing.
//
//	pump, err := pipeline.NewPump(src, sink, 10*time.Second, 4096, slog.Default())
//	if err != nil {
//	    // degenerate configuration
//	}
//	if err := pump.Run(); err != nil {
//	    // source or sink failure
//	}
//	fmt.Printf("avg speed: %.0f samples/sec\n", pump.Avg())
package pipeline
