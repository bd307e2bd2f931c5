package commands

import (
	"context"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
)

type CreateProductResponse struct {
	ProductID string
	Sku       string
	Price     decimal.Decimal
}

// CreateProductCommandHandler persists a new active product. A duplicate SKU fails at
// commit with errs.PersistenceFailureError.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      ports.Clock
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, clock ports.Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (CreateProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateProductResponse{}, err
	}

	aggregate, err := product.NewProduct(cmd.Sku(), cmd.Name(), cmd.Price(), h.clock.Now())
	if err != nil {
		return CreateProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return CreateProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateProductResponse{}, err
	}

	return CreateProductResponse{
		ProductID: aggregate.ID().String(),
		Sku:       aggregate.Sku(),
		Price:     aggregate.Price(),
	}, nil
}
