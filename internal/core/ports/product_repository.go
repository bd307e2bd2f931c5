package ports

import (
	"context"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/paging"
)

// ProductListFilter narrows a product listing.
type ProductListFilter struct {
	// Search matches SKU or name, case-insensitive substring. Blank applies no filter.
	Search string
	// IsActive is ignored when nil.
	IsActive *bool
}

type ProductSortBy int

const (
	ProductSortByCreatedAt ProductSortBy = iota
	ProductSortBySku
	ProductSortByName
	ProductSortByPrice
)

// ParseProductSortBy maps a sort key name; unknown names give ProductSortByCreatedAt.
func ParseProductSortBy(s string) ProductSortBy {
	sortBy, _ := lookupProductSortBy(s)
	return sortBy
}

func IsProductSortBy(s string) bool {
	_, ok := lookupProductSortBy(s)
	return ok
}

func lookupProductSortBy(s string) (ProductSortBy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "createdatutc", "createdat":
		return ProductSortByCreatedAt, true
	case "sku":
		return ProductSortBySku, true
	case "name":
		return ProductSortByName, true
	case "price":
		return ProductSortByPrice, true
	default:
		return ProductSortByCreatedAt, false
	}
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product. A duplicate SKU fails with errs.PersistenceFailureError.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get returns errs.ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	ListPaged(
		ctx context.Context,
		page, pageSize int,
		filter ProductListFilter,
		sortBy ProductSortBy,
		direction paging.Direction,
	) ([]*product.Product, int, error)
}
