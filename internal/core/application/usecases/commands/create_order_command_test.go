package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	items := []commands.CreateOrderItem{
		{ProductID: kernel.NewUUID(), Quantity: 2, UnitPrice: decimal.RequireFromString("45.50")},
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, items, cmd.Items())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_ItemsAreCopied(t *testing.T) {
	items := []commands.CreateOrderItem{
		{ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), items)
	require.NoError(t, err)

	items[0].Quantity = 99
	assert.Equal(t, 1, cmd.Items()[0].Quantity)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	items := []commands.CreateOrderItem{
		{ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
	}
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
