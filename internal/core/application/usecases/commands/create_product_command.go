package commands

import (
	"errors"

	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sku   string
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(sku, name string, price decimal.Decimal) (CreateProductCommand, error) {
	if err := errors.Join(
		requireText("sku", sku),
		requireText("name", name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		sku:   sku,
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Sku() string {
	return c.sku
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}
