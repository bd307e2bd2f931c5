package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/ports"
)

type CreateCustomerResponse struct {
	CustomerID   string
	CreatedAtUTC time.Time
}

// CreateCustomerCommandHandler persists a new active customer. A duplicate email or
// document number fails at commit with errs.PersistenceFailureError.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      ports.Clock
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clock ports.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (CreateCustomerResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateCustomerResponse{}, err
	}

	aggregate, err := customer.NewCustomer(cmd.Profile(), h.clock.Now())
	if err != nil {
		return CreateCustomerResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateCustomerResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return CreateCustomerResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateCustomerResponse{}, err
	}

	return CreateCustomerResponse{
		CustomerID:   aggregate.ID().String(),
		CreatedAtUTC: aggregate.CreatedAtUTC(),
	}, nil
}
