package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Changes made through its repositories become visible only after Commit, all at once.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit applies all pending changes atomically and then dispatches the domain events
	// of the aggregates that were written. A conflict such as a unique violation is
	// reported as errs.PersistenceFailureError.
	Commit(ctx context.Context) error

	// Rollback discards pending changes.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// RefreshTokenRepository returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepository() RefreshTokenRepository
}
