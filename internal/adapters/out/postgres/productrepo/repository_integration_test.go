package productrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *productrepo.GormProductRepository
	baseTime   time.Time
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &productrepo.ProductDTO{})
	suite.Require().NoError(err)
	suite.database = database
	suite.baseTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("products"))

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = productrepo.NewGormProductRepository(suite.database.DB, tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) add(sku, name, price string, offset time.Duration) *product.Product {
	p, err := product.NewProduct(sku, name, decimal.RequireFromString(price), suite.baseTime.Add(offset))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(suite.T().Context(), p))
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_RoundTrips() {
	p := suite.add("sku-001", "Keyboard", "45.5", 0)

	loaded, err := suite.repository.Get(suite.T().Context(), p.ID())
	suite.Require().NoError(err)
	suite.Equal("SKU-001", loaded.Sku())
	suite.Equal("Keyboard", loaded.Name())
	suite.Equal("45.50", loaded.Price().StringFixed(2))
	suite.True(loaded.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateSku_IsPersistenceFailure() {
	suite.add("SKU-001", "Keyboard", "10", 0)

	p, err := product.NewProduct("sku-001", "Mouse", decimal.NewFromInt(5), suite.baseTime)
	suite.Require().NoError(err)
	suite.ErrorIs(suite.repository.Add(suite.T().Context(), p), errs.ErrPersistenceFailure)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestListPaged_FiltersAndSortsByPrice() {
	ctx := suite.T().Context()
	suite.add("KB-1", "Keyboard", "45.50", 0)
	suite.add("MS-1", "Mouse", "12.00", time.Minute)
	suite.add("KB-2", "Keyboard Pro", "99.99", 2*time.Minute)

	products, total, err := suite.repository.ListPaged(ctx, 1, 10,
		ports.ProductListFilter{Search: "keyboard"}, ports.ProductSortByPrice, paging.Descending)
	suite.Require().NoError(err)
	suite.Equal(2, total)
	suite.Require().Len(products, 2)
	suite.Equal("KB-2", products[0].Sku())
	suite.Equal("KB-1", products[1].Sku())

	inactive := false
	_, total, err = suite.repository.ListPaged(ctx, 1, 10,
		ports.ProductListFilter{IsActive: &inactive}, ports.ProductSortBySku, paging.Ascending)
	suite.Require().NoError(err)
	suite.Zero(total)
}
