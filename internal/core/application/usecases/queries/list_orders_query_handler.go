package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/paging"
)

// ListOrdersQueryHandler returns one page of order summaries with paging metadata.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (paging.Result[OrderSummary], error) {
	if err := query.Validate(); err != nil {
		return paging.Result[OrderSummary]{}, err
	}

	orders, total, err := h.orders.ListPaged(
		ctx,
		query.Page(),
		query.PageSize(),
		query.Filter(),
		query.SortBy(),
		query.Direction(),
	)
	if err != nil {
		return paging.Result[OrderSummary]{}, err
	}

	result := paging.NewResult(orders, query.Page(), query.PageSize(), total)
	return paging.MapResult(result, toOrderSummary), nil
}

func toOrderSummary(o *order.Order) OrderSummary {
	return OrderSummary{
		OrderID:      o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		CreatedAtUTC: o.CreatedAtUTC(),
		Status:       o.Status().String(),
		TotalAmount:  o.Total(),
		ItemsCount:   len(o.Items()),
	}
}
