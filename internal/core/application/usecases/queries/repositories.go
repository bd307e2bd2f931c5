// Package queries contains read operations. Handlers read through the repository ports
// outside of any transaction and return read models; nothing here mutates state.
package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/paging"
)

// Read-side subsets of the repository ports.
type (
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		ListPaged(
			ctx context.Context,
			page, pageSize int,
			filter ports.OrderListFilter,
			sortBy ports.OrderSortBy,
			direction paging.Direction,
		) ([]*order.Order, int, error)
	}

	CustomerReader interface {
		Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
		ListPaged(
			ctx context.Context,
			page, pageSize int,
			filter ports.CustomerListFilter,
			sortBy ports.CustomerSortBy,
			direction paging.Direction,
		) ([]*customer.Customer, int, error)
	}

	ProductReader interface {
		Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
		ListPaged(
			ctx context.Context,
			page, pageSize int,
			filter ports.ProductListFilter,
			sortBy ports.ProductSortBy,
			direction paging.Direction,
		) ([]*product.Product, int, error)
	}

	RefreshTokenStatsReader interface {
		Stats(ctx context.Context, now time.Time) (ports.RefreshTokenStats, error)
	}
)
