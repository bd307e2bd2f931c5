package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreateOrderResponse is the projection returned after an order is placed.
type CreateOrderResponse struct {
	OrderID     string
	TotalAmount decimal.Decimal
	Status      string
}

// CreateOrderCommandHandler creates a Draft order, adds every requested line, submits it
// and persists it. Either the whole sequence commits or nothing does.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle places the order. Invalid lines surface as InvalidArgument errors before anything
// is written.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), h.clock.Now())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	for _, item := range cmd.Items() {
		if err = aggregate.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			return CreateOrderResponse{}, err
		}
	}

	if err = aggregate.Submit(); err != nil {
		return CreateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	return CreateOrderResponse{
		OrderID:     aggregate.ID().String(),
		TotalAmount: aggregate.Total(),
		Status:      aggregate.Status().String(),
	}, nil
}
