package commands

import (
	"context"
)

// OrderStatusResponse is the projection returned by order lifecycle commands.
type OrderStatusResponse struct {
	OrderID string
	Status  string
}

// CancelOrderCommandHandler cancels an order. Cancelling a Cancelled order succeeds without
// change; Shipped and Delivered orders cannot be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, cancels it and persists the new status.
// A missing order yields errs.ObjectNotFoundError.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (OrderStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OrderStatusResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return OrderStatusResponse{}, err
	}

	if err = aggregate.Cancel(); err != nil {
		return OrderStatusResponse{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return OrderStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderStatusResponse{}, err
	}

	return OrderStatusResponse{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
	}, nil
}
