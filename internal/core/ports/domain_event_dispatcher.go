package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// DomainEventDispatcher receives domain events after the unit of work that produced them
// has committed. Dispatch errors do not undo the commit.
type DomainEventDispatcher interface {
	Dispatch(ctx context.Context, events []kernel.DomainEvent) error
}
