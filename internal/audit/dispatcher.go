package audit

import "github.com/rs/zerolog/log"

type Event struct {
	SalonID  uint
	ActorID  *string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Write(ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop audit rather than stall the API
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
