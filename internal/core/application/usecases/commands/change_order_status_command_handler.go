package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies one fulfillment transition to an order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and runs MarkPaid, Ship or Deliver depending on the target status.
// Transitions out of order fail with errs.InvalidStateError.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (OrderStatusResponse, error) {
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

	if err = transition(aggregate, cmd.Target()); err != nil {
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

func transition(aggregate *order.Order, target order.Status) error {
	switch target {
	case order.Paid:
		return aggregate.MarkPaid()
	case order.Shipped:
		return aggregate.Ship()
	default:
		return aggregate.Deliver()
	}
}
