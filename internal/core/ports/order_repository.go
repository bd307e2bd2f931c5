package ports

import (
	"context"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/paging"
)

// OrderListFilter narrows an order listing. All set fields are AND-combined.
type OrderListFilter struct {
	// Status is matched with order.ParseStatus; an unparseable value applies no filter.
	Status string
	// CustomerID is ignored when nil.
	CustomerID *kernel.UUID
	// CreatedFrom and CreatedTo are inclusive bounds on the creation time.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// StatusFilter returns the parsed status and whether the status filter applies.
func (f OrderListFilter) StatusFilter() (order.Status, bool) {
	if strings.TrimSpace(f.Status) == "" {
		return order.Unknown, false
	}
	status, err := order.ParseStatus(f.Status)
	if err != nil {
		return order.Unknown, false
	}
	return status, true
}

// OrderSortBy is the sort key of an order listing.
type OrderSortBy int

const (
	OrderSortByCreatedAt OrderSortBy = iota
	OrderSortByCustomerID
	OrderSortByStatus
)

// ParseOrderSortBy maps a sort key name to OrderSortBy; unknown names give OrderSortByCreatedAt.
func ParseOrderSortBy(s string) OrderSortBy {
	sortBy, _ := lookupOrderSortBy(s)
	return sortBy
}

// IsOrderSortBy reports whether s names an order sort key.
func IsOrderSortBy(s string) bool {
	_, ok := lookupOrderSortBy(s)
	return ok
}

func lookupOrderSortBy(s string) (OrderSortBy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "createdatutc", "createdat":
		return OrderSortByCreatedAt, true
	case "customerid":
		return OrderSortByCustomerID, true
	case "status":
		return OrderSortByStatus, true
	default:
		return OrderSortByCreatedAt, false
	}
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Items are immutable and not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListPaged returns one page of orders matching filter, sorted by sortBy then by id,
	// and the number of matching orders. Items are loaded.
	ListPaged(
		ctx context.Context,
		page, pageSize int,
		filter OrderListFilter,
		sortBy OrderSortBy,
		direction paging.Direction,
	) ([]*order.Order, int, error)
}
