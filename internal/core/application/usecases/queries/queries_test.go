package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/clock"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReader) ListPaged(
	ctx context.Context,
	page, pageSize int,
	filter ports.OrderListFilter,
	sortBy ports.OrderSortBy,
	direction paging.Direction,
) ([]*order.Order, int, error) {
	args := m.Called(ctx, page, pageSize, filter, sortBy, direction)
	return args.Get(0).([]*order.Order), args.Int(1), args.Error(2)
}

type MockCustomerReader struct{ mock.Mock }

func (m *MockCustomerReader) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerReader) ListPaged(
	ctx context.Context,
	page, pageSize int,
	filter ports.CustomerListFilter,
	sortBy ports.CustomerSortBy,
	direction paging.Direction,
) ([]*customer.Customer, int, error) {
	args := m.Called(ctx, page, pageSize, filter, sortBy, direction)
	return args.Get(0).([]*customer.Customer), args.Int(1), args.Error(2)
}

type MockProductReader struct{ mock.Mock }

func (m *MockProductReader) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*product.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductReader) ListPaged(
	ctx context.Context,
	page, pageSize int,
	filter ports.ProductListFilter,
	sortBy ports.ProductSortBy,
	direction paging.Direction,
) ([]*product.Product, int, error) {
	args := m.Called(ctx, page, pageSize, filter, sortBy, direction)
	return args.Get(0).([]*product.Product), args.Int(1), args.Error(2)
}

type MockStatsReader struct{ mock.Mock }

func (m *MockStatsReader) Stats(ctx context.Context, now time.Time) (ports.RefreshTokenStats, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(ports.RefreshTokenStats), args.Error(1)
}

func newOrder(t *testing.T, lines int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), createdAt)
	require.NoError(t, err)
	for range lines {
		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, decimal.RequireFromString("45.50")))
	}
	return o
}

func TestNewListOrdersQuery_ClampsAndDefaults(t *testing.T) {
	q := queries.NewListOrdersQuery(0, 500, ports.OrderListFilter{}, "colour", "sideways")
	require.NoError(t, q.Validate())
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, paging.MaxPageSize, q.PageSize())
	assert.Equal(t, ports.OrderSortByCreatedAt, q.SortBy())
	assert.Equal(t, paging.Descending, q.Direction())

	q = queries.NewListOrdersQuery(3, 0, ports.OrderListFilter{}, "Status", "asc")
	assert.Equal(t, 3, q.Page())
	assert.Equal(t, paging.DefaultPageSize, q.PageSize())
	assert.Equal(t, ports.OrderSortByStatus, q.SortBy())
	assert.Equal(t, paging.Ascending, q.Direction())
}

func TestListOrdersQueryHandler_Handle_SecondPage(t *testing.T) {
	ctx := t.Context()
	page := make([]*order.Order, 0, 10)
	for range 10 {
		page = append(page, newOrder(t, 1))
	}
	filter := ports.OrderListFilter{Status: "Draft"}

	reader := new(MockOrderReader)
	reader.On("ListPaged", ctx, 2, 10, filter, ports.OrderSortByCreatedAt, paging.Descending).
		Return(page, 25, nil).Once()

	h := queries.NewListOrdersQueryHandler(reader)
	result, err := h.Handle(ctx, queries.NewListOrdersQuery(2, 10, filter, "", ""))
	require.NoError(t, err)

	assert.Len(t, result.Items, 10)
	assert.Equal(t, 25, result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, page[0].ID().String(), result.Items[0].OrderID)
	assert.Equal(t, 1, result.Items[0].ItemsCount)
	assert.True(t, decimal.RequireFromString("91").Equal(result.Items[0].TotalAmount))
	assert.Equal(t, "Draft", result.Items[0].Status)
	reader.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewListOrdersQueryHandler(new(MockOrderReader))
	_, err := h.Handle(t.Context(), queries.ListOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestGetOrderByIDQueryHandler_Handle_MapsLines(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, 2)
	reader := new(MockOrderReader)
	reader.On("Get", ctx, o.ID()).Return(o, nil).Once()

	q, err := queries.NewGetOrderByIDQuery(o.ID())
	require.NoError(t, err)

	details, err := queries.NewGetOrderByIDQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), details.OrderID)
	assert.Equal(t, o.CustomerID().String(), details.CustomerID)
	require.Len(t, details.Items, 2)
	assert.True(t, decimal.RequireFromString("91.00").Equal(details.Items[0].LineTotal))
	assert.True(t, decimal.RequireFromString("182.00").Equal(details.TotalAmount))
}

func TestGetOrderByIDQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	reader := new(MockOrderReader)
	reader.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()

	q, err := queries.NewGetOrderByIDQuery(id)
	require.NoError(t, err)

	_, err = queries.NewGetOrderByIDQueryHandler(reader).Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetOrderByIDQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListCustomersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	c, err := customer.NewCustomer(customer.Profile{
		FullName:       "Grace Hopper",
		Email:          "grace@example.com",
		DocumentNumber: "D-1",
		PhoneNumber:    "555-0100",
	}, createdAt)
	require.NoError(t, err)

	filter := ports.CustomerListFilter{Search: "grace"}
	reader := new(MockCustomerReader)
	reader.On("ListPaged", ctx, 1, 10, filter, ports.CustomerSortByFullName, paging.Ascending).
		Return([]*customer.Customer{c}, 1, nil).Once()

	result, err := queries.NewListCustomersQueryHandler(reader).
		Handle(ctx, queries.NewListCustomersQuery(-4, -1, filter, "fullName", "ASC"))
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Grace Hopper", result.Items[0].Profile.FullName)
	assert.True(t, result.Items[0].IsActive)
	assert.Equal(t, 1, result.TotalPages)
}

func TestGetCustomerByIDQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	reader := new(MockCustomerReader)
	reader.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("customerId", id)).Once()

	q, err := queries.NewGetCustomerByIDQuery(id)
	require.NoError(t, err)
	_, err = queries.NewGetCustomerByIDQueryHandler(reader).Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListProductsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p, err := product.NewProduct("sku-1", "Widget", decimal.RequireFromString("9.99"), createdAt)
	require.NoError(t, err)

	active := true
	filter := ports.ProductListFilter{IsActive: &active}
	reader := new(MockProductReader)
	reader.On("ListPaged", ctx, 1, 10, filter, ports.ProductSortByPrice, paging.Descending).
		Return([]*product.Product{p}, 1, nil).Once()

	result, err := queries.NewListProductsQueryHandler(reader).
		Handle(ctx, queries.NewListProductsQuery(1, 10, filter, "price", ""))
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "SKU-1", result.Items[0].Sku)
}

func TestGetProductByIDQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p, err := product.NewProduct("sku-1", "Widget", decimal.RequireFromString("9.99"), createdAt)
	require.NoError(t, err)
	reader := new(MockProductReader)
	reader.On("Get", ctx, p.ID()).Return(p, nil).Once()

	q, err := queries.NewGetProductByIDQuery(p.ID())
	require.NoError(t, err)
	details, err := queries.NewGetProductByIDQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "Widget", details.Name)
	assert.Equal(t, createdAt, details.CreatedAtUTC)
}

func TestGetRefreshTokenStatsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reader := new(MockStatsReader)
	reader.On("Stats", ctx, createdAt).Return(ports.RefreshTokenStats{Active: 3, Revoked: 2, Expired: 1}, nil).Once()

	h := queries.NewGetRefreshTokenStatsQueryHandler(reader, clock.NewFixed(createdAt))
	resp, err := h.Handle(ctx, queries.NewGetRefreshTokenStatsQuery())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Active)
	assert.Equal(t, 2, resp.Revoked)
	assert.Equal(t, 1, resp.Expired)
	assert.Equal(t, createdAt, resp.AsOfUTC)
}
