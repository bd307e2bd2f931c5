package memory

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

var ErrNoTransaction = errors.New("no active transaction")

type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

type UnitOfWorkFactory struct {
	store      *Store
	dispatcher ports.DomainEventDispatcher
	logger     *slog.Logger
}

func NewUnitOfWorkFactory(store *Store, dispatcher ports.DomainEventDispatcher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger.With("component", "unit_of_work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:      f.store,
		dispatcher: f.dispatcher,
		logger:     f.logger,
	}
}

// UnitOfWork stages writes against a private copy of the store taken at Begin and replays
// them on the latest snapshot at Commit. Without Begin every write commits on its own.
type UnitOfWork struct {
	store      *Store
	dispatcher ports.DomainEventDispatcher
	logger     *slog.Logger

	working *state
	pending []op
	tracked []any
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.working != nil {
		return nil
	}
	uow.working = uow.store.snapshot().clone()
	return nil
}

// Commit replays the staged writes atomically. Uniqueness is checked again against the
// latest snapshot, so a concurrent commit can still make this one fail.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pending := uow.pending
	tracked := uow.tracked
	uow.reset()

	if err := uow.store.apply(pending); err != nil {
		return err
	}

	uow.dispatchEvents(ctx, tracked)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}
	uow.reset()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: uow}
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow}
}

func (uow *UnitOfWork) RefreshTokenRepository() ports.RefreshTokenRepository {
	return &refreshTokenRepository{uow: uow}
}

func (uow *UnitOfWork) reset() {
	uow.working = nil
	uow.pending = nil
	uow.tracked = nil
}

// view is what reads see: the private copy inside a transaction, the committed snapshot
// otherwise.
func (uow *UnitOfWork) view() *state {
	if uow.working != nil {
		return uow.working
	}
	return uow.store.snapshot()
}

// exec stages o, or applies it immediately outside a transaction.
func (uow *UnitOfWork) exec(o op, aggregate any) error {
	if uow.working == nil {
		return uow.store.apply([]op{o})
	}

	if err := o(uow.working); err != nil {
		return err
	}
	uow.pending = append(uow.pending, o)
	uow.tracked = append(uow.tracked, aggregate)
	return nil
}

func (uow *UnitOfWork) dispatchEvents(ctx context.Context, tracked []any) {
	var events []kernel.DomainEvent
	for _, aggregate := range tracked {
		source, ok := aggregate.(eventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}

	if len(events) == 0 || uow.dispatcher == nil {
		return
	}

	if err := uow.dispatcher.Dispatch(ctx, events); err != nil {
		uow.logger.ErrorContext(ctx, "domain event dispatch failed",
			"events", len(events),
			"error", err,
		)
	}
}
