package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested order line.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to place an order for a customer.
// Items are added in the given order and the order is submitted in the same transaction.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []CreateOrderItem{
//	    {ProductID: productID, Quantity: 2, UnitPrice: decimal.RequireFromString("45.50")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, cmd)
//	// resp.TotalAmount == 91.00, resp.Status == "Submitted"
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	items      []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that the customer id is set and at least one item is given.
// Per-item checks are left to the aggregate.
func NewCreateOrderCommand(customerID kernel.UUID, items []CreateOrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	items := make([]CreateOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
