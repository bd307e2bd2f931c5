// Package eventlog delivers committed domain events to the structured log.
package eventlog

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

type Dispatcher struct {
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger.With("component", "domain_events")}
}

var _ ports.DomainEventDispatcher = (*Dispatcher)(nil)

func (d *Dispatcher) Dispatch(ctx context.Context, events []kernel.DomainEvent) error {
	for _, e := range events {
		d.logger.InfoContext(ctx, "domain event",
			"event", e.EventName(),
			"aggregate_id", e.AggregateID().String(),
			"occurred_on_utc", e.OccurredOnUTC(),
		)
	}
	return nil
}
