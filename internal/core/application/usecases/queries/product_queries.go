package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
	"ordering/internal/pkg/paging"

	"github.com/shopspring/decimal"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrGetProductByIDQueryIsNotConstructed = errors.New(
		"GetProductByIDQuery must be created via NewGetProductByIDQuery constructor",
	)
)

// ListProductsQuery pages through the catalog. Sort keys: sku, name, price, createdAtUtc.
type ListProductsQuery struct {
	page      int
	pageSize  int
	filter    ports.ProductListFilter
	sortBy    ports.ProductSortBy
	direction paging.Direction

	guard guard.ConstructorGuard
}

func NewListProductsQuery(
	page, pageSize int,
	filter ports.ProductListFilter,
	sortBy, sortDirection string,
) ListProductsQuery {
	return ListProductsQuery{
		page:      paging.ClampPage(page),
		pageSize:  paging.ClampPageSize(pageSize),
		filter:    filter,
		sortBy:    ports.ParseProductSortBy(sortBy),
		direction: paging.ParseDirection(sortDirection),
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type GetProductByIDQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductByIDQuery(productID kernel.UUID) (GetProductByIDQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}

	return GetProductByIDQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByIDQueryIsNotConstructed)
}

type ProductDetails struct {
	ProductID    string
	Sku          string
	Name         string
	Price        decimal.Decimal
	IsActive     bool
	CreatedAtUTC time.Time
}

func toProductDetails(p *product.Product) ProductDetails {
	return ProductDetails{
		ProductID:    p.ID().String(),
		Sku:          p.Sku(),
		Name:         p.Name(),
		Price:        p.Price(),
		IsActive:     p.IsActive(),
		CreatedAtUTC: p.CreatedAtUTC(),
	}
}
