package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

type GetOrderByIDQueryHandler struct {
	orders OrderReader
}

func NewGetOrderByIDQueryHandler(orders OrderReader) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	return toOrderDetails(o), nil
}

func toOrderDetails(o *order.Order) OrderDetails {
	items := o.Items()
	details := OrderDetails{
		OrderID:      o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		CreatedAtUTC: o.CreatedAtUTC(),
		Status:       o.Status().String(),
		TotalAmount:  o.Total(),
		Items:        make([]OrderItemDetails, 0, len(items)),
	}

	for _, item := range items {
		details.Items = append(details.Items, OrderItemDetails{
			ItemID:    item.ID().String(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	return details
}
