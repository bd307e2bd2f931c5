package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

const CreatedEventName = "order.created"

// CreatedEvent is recorded when NewOrder creates a Draft order.
type CreatedEvent struct {
	OrderID    kernel.UUID
	OccurredOn time.Time
}

func (e CreatedEvent) EventName() string {
	return CreatedEventName
}

func (e CreatedEvent) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e CreatedEvent) OccurredOnUTC() time.Time {
	return e.OccurredOn
}
