// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ik5/audpipe/audio"
	"github.com/ik5/audpipe/profiler"
)

// Pump moves frames from a Source to a Writer across a Queue: a producer
// goroutine decodes frames and enqueues them, while the calling goroutine
// consumes them and drives the sink. The sink side is wrapped in a
// ProfilingWriter, so the consumer goroutine remains the profiler's single
// owner, and the measured average is reported through the logger at a
// cadence throttled by a RateLimiter.
type Pump struct {
	src       audio.Source
	writer    *profiler.ProfilingWriter
	queue     *Queue
	frameSize int

	limiter *profiler.RateLimiter
	log     *slog.Logger

	stop atomic.Bool
}

// NewPump wires src to dst with a profiling decorator over the configured
// interval. frameSize is the number of interleaved samples read from the
// source per frame. A nil logger suppresses reporting but not profiling.
func NewPump(src audio.Source, dst audio.Writer, interval time.Duration, frameSize int, log *slog.Logger) (*Pump, error) {
	if frameSize <= 0 {
		return nil, ErrInvalidFrameSize
	}

	writer := profiler.NewProfilingWriter(dst, src.Channels(), src.SampleRate(), interval)
	if !writer.Valid() {
		return nil, ErrInvalidConfig
	}

	return &Pump{
		src:       src,
		writer:    writer,
		queue:     NewQueue(),
		frameSize: frameSize,
		limiter:   profiler.NewRateLimiter(interval),
		log:       log,
	}, nil
}

// Run pumps the whole stream and blocks until the source is drained or
// either side fails. It must not be called concurrently with itself.
func (p *Pump) Run() error {
	errc := make(chan error, 1)

	go func() {
		errc <- p.produce()
		// End-of-stream marker: a nil write still signals the consumer.
		p.queue.Write(nil)
	}()

	for {
		pkt := p.queue.Read()
		if pkt == nil {
			break
		}

		if err := p.writer.WriteFrame(pkt.Data); err != nil {
			// Let the producer wind down before returning; its writes
			// never block, so this is prompt.
			p.stop.Store(true)
			<-errc

			return fmt.Errorf("writing frame %d: %w", pkt.Seq, err)
		}

		if p.log != nil && p.limiter.Allow() {
			p.log.Info("pipeline throughput",
				slog.Float64("samples_per_sec", p.writer.Avg()))
		}
	}

	if err := <-errc; err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (p *Pump) produce() error {
	buf := make([]float32, p.frameSize)
	var seq uint64

	for !p.stop.Load() {
		n, err := p.src.ReadSamples(buf)
		if n > 0 {
			data := make(audio.Frame, n)
			copy(data, buf[:n])

			seq++
			p.queue.Write(&Packet{Seq: seq, Data: data})
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Avg returns the sink's current moving-average speed in samples per second
// per channel. Call it after Run returns, or from the goroutine running Run.
func (p *Pump) Avg() float64 {
	return p.writer.Avg()
}
