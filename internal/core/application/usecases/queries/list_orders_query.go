package queries

import (
	"errors"
	"time"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
	"ordering/internal/pkg/paging"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery asks for one page of orders. Page and page size are clamped and unknown
// sort keys or directions fall back to CreatedAtUtc descending; the query never fails on
// its own input.
//
// Example:
//
//	query := NewListOrdersQuery(2, 10, ports.OrderListFilter{Status: "Submitted"}, "createdAtUtc", "desc")
//	result, err := handler.Handle(ctx, query)
//	// result.TotalPages == ceil(result.TotalCount / 10)
type ListOrdersQuery struct {
	page      int
	pageSize  int
	filter    ports.OrderListFilter
	sortBy    ports.OrderSortBy
	direction paging.Direction

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(
	page, pageSize int,
	filter ports.OrderListFilter,
	sortBy, sortDirection string,
) ListOrdersQuery {
	return ListOrdersQuery{
		page:      paging.ClampPage(page),
		pageSize:  paging.ClampPageSize(pageSize),
		filter:    filter,
		sortBy:    ports.ParseOrderSortBy(sortBy),
		direction: paging.ParseDirection(sortDirection),
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q ListOrdersQuery) Filter() ports.OrderListFilter {
	return q.filter
}

func (q ListOrdersQuery) SortBy() ports.OrderSortBy {
	return q.sortBy
}

func (q ListOrdersQuery) Direction() paging.Direction {
	return q.direction
}

// OrderSummary is the list read model of an order.
type OrderSummary struct {
	OrderID      string
	CustomerID   string
	CreatedAtUTC time.Time
	Status       string
	TotalAmount  decimal.Decimal
	ItemsCount   int
}
