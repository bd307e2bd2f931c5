package commands_test

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/paging"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListPaged(
	_ context.Context, _, _ int, _ ports.OrderListFilter, _ ports.OrderSortBy, _ paging.Direction,
) ([]*order.Order, int, error) {
	panic("not used by command handlers")
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(_ context.Context, _ kernel.UUID) (*customer.Customer, error) {
	panic("not used by command handlers")
}

func (m *MockCustomerRepository) ListPaged(
	_ context.Context, _, _ int, _ ports.CustomerListFilter, _ ports.CustomerSortBy, _ paging.Direction,
) ([]*customer.Customer, int, error) {
	panic("not used by command handlers")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	panic("not used by command handlers")
}

func (m *MockProductRepository) ListPaged(
	_ context.Context, _, _ int, _ ports.ProductListFilter, _ ports.ProductSortBy, _ paging.Direction,
) ([]*product.Product, int, error) {
	panic("not used by command handlers")
}

type MockRefreshTokenRepository struct{ mock.Mock }

func (m *MockRefreshTokenRepository) Add(ctx context.Context, t *refreshtoken.RefreshToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Update(ctx context.Context, t *refreshtoken.RefreshToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*refreshtoken.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if t, ok := args.Get(0).(*refreshtoken.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) GetLatestActiveForUser(
	ctx context.Context, userID string, now time.Time,
) (*refreshtoken.RefreshToken, error) {
	args := m.Called(ctx, userID, now)
	if t, ok := args.Get(0).(*refreshtoken.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) Stats(_ context.Context, _ time.Time) (ports.RefreshTokenStats, error) {
	panic("not used by command handlers")
}

// MockUoW satisfies every narrowed unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) RefreshTokenRepository() ports.RefreshTokenRepository {
	args := m.Called()
	return args.Get(0).(ports.RefreshTokenRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockRefreshTokenUoWFactory struct{ mock.Mock }

func (m *MockRefreshTokenUoWFactory) Create() commands.RefreshTokenUoW {
	args := m.Called()
	return args.Get(0).(commands.RefreshTokenUoW)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) IssueAccessToken(userID, username string, roles []string) (ports.AccessToken, error) {
	args := m.Called(userID, username, roles)
	return args.Get(0).(ports.AccessToken), args.Error(1)
}

func (m *MockTokenService) ParseAccessToken(raw string) (ports.AccessTokenClaims, error) {
	args := m.Called(raw)
	return args.Get(0).(ports.AccessTokenClaims), args.Error(1)
}

func (m *MockTokenService) GenerateRefreshToken() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) HashRefreshToken(raw string) string {
	args := m.Called(raw)
	if fn, ok := args.Get(0).(func(string) string); ok {
		return fn(raw)
	}
	return args.String(0)
}

func (m *MockTokenService) RefreshTokenLifetime() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

type MockIdentityProvider struct{ mock.Mock }

func (m *MockIdentityProvider) VerifyCredentials(ctx context.Context, login, password string) (ports.Identity, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(ports.Identity), args.Error(1)
}

func (m *MockIdentityProvider) FindByID(ctx context.Context, userID string) (ports.Identity, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.Identity), args.Error(1)
}

func (m *MockIdentityProvider) Register(
	ctx context.Context, username, email, password string, roles []string,
) (ports.Identity, error) {
	args := m.Called(ctx, username, email, password, roles)
	return args.Get(0).(ports.Identity), args.Error(1)
}
