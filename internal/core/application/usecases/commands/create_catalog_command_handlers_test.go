package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/clock"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProfile() customer.Profile {
	return customer.Profile{
		FullName:       "Ada Lovelace",
		Email:          "Ada@Example.com",
		DocumentNumber: "123.456.789-00",
		PhoneNumber:    "+44 20 7946 0000",
		City:           "London",
	}
}

func TestNewCreateCustomerCommand_MissingRequiredFields(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(customer.Profile{FullName: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "fullName")
	assert.Contains(t, err.Error(), "phoneNumber")
}

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(validProfile())
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	factory := new(MockCustomerUoWFactory)
	var added *customer.Customer
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*customer.Customer) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateCustomerCommandHandler(factory, clock.NewFixed(fixedNow))
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, added.ID().String(), resp.CustomerID)
	assert.Equal(t, fixedNow, resp.CreatedAtUTC)
	assert.Equal(t, "ada@example.com", added.Email())
	assert.True(t, added.IsActive())
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_InvalidEmailWritesNothing(t *testing.T) {
	profile := validProfile()
	profile.Email = "not-an-email"
	cmd, err := commands.NewCreateCustomerCommand(profile)
	require.NoError(t, err)

	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory, clock.NewFixed(fixedNow))
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(validProfile())
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errs.NewPersistenceFailureError("commit", errors.New("unique violation"))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateCustomerCommandHandler(factory, clock.NewFixed(fixedNow))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
}

func TestNewCreateProductCommand_MissingFields(t *testing.T) {
	_, err := commands.NewCreateProductCommand("", "", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(" kb-001 ", "Keyboard", decimal.RequireFromString("129.999"))
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateProductCommandHandler(factory, clock.NewFixed(fixedNow))
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "KB-001", resp.Sku)
	assert.True(t, decimal.RequireFromString("130.00").Equal(resp.Price))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_NegativePrice(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand("KB-001", "Keyboard", decimal.NewFromInt(-1))
	require.NoError(t, err)

	factory := new(MockProductUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory, clock.NewFixed(fixedNow))
	_, err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
	assert.NotErrorIs(t, err, product.ErrProductIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
