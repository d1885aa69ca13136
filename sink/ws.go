package sink

import (
	"context"
	"log/slog"
	"sync/atomic"

	"resto-live/domain/event"
)

// Sink buffers deliveries for one connection. The websocket handler owns
// the reading end and pushes frames onto the wire at its own pace.
type Sink struct {
	Deliveries chan event.Delivery
	log        *slog.Logger
	dropped    atomic.Uint64
}

func NewSink(log *slog.Logger, bufferSize int) *Sink {
	return &Sink{
		Deliveries: make(chan event.Delivery, bufferSize),
		log:        log,
	}
}

// Consume is called by the router during fan-out.
// It never blocks: when the connection cannot keep up the delivery is
// dropped and counted (best-effort, at-most-once).
func (s *Sink) Consume(ctx context.Context, d event.Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.Deliveries <- d:
		return nil
	default:
		s.dropped.Add(1)
		s.log.Debug("slow consumer, delivery dropped", "event", d.Name)
		return nil
	}
}

// Dropped reports how many deliveries were lost to backpressure.
func (s *Sink) Dropped() uint64 {
	return s.dropped.Load()
}
