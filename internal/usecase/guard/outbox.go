package guard

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/jaevor/go-nanoid"
)

// Outbox collects the events of one instruction. They are dispatched only
// after the instruction commits.
type Outbox struct {
	now    time.Time
	events []domain.Event
}

func NewOutbox(now time.Time) *Outbox {
	return &Outbox{now: now}
}

func (o *Outbox) Add(typ domain.EventType, key domain.Address, data any) {
	o.events = append(o.events, domain.Event{
		Type:       typ,
		Key:        key,
		OccurredAt: o.now,
		Data:       data,
	})
}

func (o *Outbox) Events() []domain.Event {
	return o.events
}

// Dispatcher publishes committed events. A publish failure is logged and
// never changes the result of the instruction.
type Dispatcher struct {
	publisher domain.EventPublisher
	newID     func() string
	logger    *slog.Logger
}

func NewDispatcher(publisher domain.EventPublisher, logger *slog.Logger) (*Dispatcher, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{publisher: publisher, newID: idGenerator, logger: logger}, nil
}

func (d *Dispatcher) Dispatch(ctx context.Context, out *Outbox) {
	if d == nil || d.publisher == nil {
		return
	}
	for _, event := range out.events {
		event.ID = d.newID()
		if err := d.publisher.Publish(ctx, event); err != nil {
			d.logger.Error("failed to publish event",
				"type", event.Type,
				"key", event.Key.String(),
				"error", err.Error(),
			)
		}
	}
}
