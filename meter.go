package audpipe

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/pipeline"
)

// Meter is a high-level convenience function that streams src into dst and
// measures the sink's processing speed along the way.
//
// It builds the standard instrumented pipeline:
//  1. A producer goroutine reads frames of bufferSize samples from src
//  2. Frames cross a blocking packet queue to the calling goroutine
//  3. Each frame write into dst is timed and fed to a throughput profiler
//
// Parameters:
//   - src: the audio source to drain (implements Source interface)
//   - dst: the frame sink receiving every frame
//   - interval: the sliding window the average is computed over
//     (e.g. 10*time.Second); must be at least profiler.ChunkDuration
//   - bufferSize: samples read from the source per frame (e.g. 4096)
//
// Returns the final moving-average speed in samples per second per channel,
// and any error from the source or the sink.
//
// Note: for periodic reporting while the stream is still running, use
// pipeline.NewPump directly and pass it a logger.
func Meter(src audio.Source, dst audio.Writer, interval time.Duration, bufferSize int) (float64, error) {
	return MeterWithLog(src, dst, interval, bufferSize, nil)
}

// MeterWithLog is Meter with progress reporting: the sink's moving average
// is logged through log, throttled to once per interval.
func MeterWithLog(src audio.Source, dst audio.Writer, interval time.Duration, bufferSize int, log *slog.Logger) (float64, error) {
	pump, err := pipeline.NewPump(src, dst, interval, bufferSize, log)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	if err := pump.Run(); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return pump.Avg(), nil
}
