// Package commands contains business operations that modify system state.
// Every handler opens exactly one unit of work, performs one mutation sequence and commits once.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	RefreshTokenRepoFactory interface {
		RefreshTokenRepository() ports.RefreshTokenRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// RefreshTokenUoW manages transactions for the authentication flows.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.RefreshTokenRepository()
	//   // ... revoke the old token, add the successor
	//
	//   err = uow.Commit(ctx)
	RefreshTokenUoW interface {
		TxManager
		RefreshTokenRepoFactory
	}

	RefreshTokenUoWFactory interface {
		Create() RefreshTokenUoW
	}
)
