package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are buffered on the aggregate
// and handed to a dispatcher only after the surrounding unit of work commits.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredOnUTC() time.Time
}

// EventRecorder is embedded by aggregates that raise domain events.
// The zero value is ready to use.
type EventRecorder struct {
	events []DomainEvent
}

// RecordEvent appends an event to the buffer.
func (r *EventRecorder) RecordEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the buffered events.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drains the buffer.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
