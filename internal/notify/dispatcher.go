package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Publisher delivers a single event to the notification backend.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Dispatcher decouples request handling from notification delivery: events
// are queued on a buffered channel and published by a background worker.
// When the queue is full the event is dropped: notifications must never
// block or fail a booking.
type Dispatcher struct {
	publisher Publisher
	queue     chan Event
}

func NewDispatcher(publisher Publisher) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		queue:     make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.publisher.Publish(ctx, ev); err != nil {
			log.Error().Err(err).Str("event", ev.Type).Msg("notify publish failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("event", ev.Type).Msg("notify queue full, dropping event")
	}
}
