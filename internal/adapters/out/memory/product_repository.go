package memory

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"
)

type productRepository struct {
	uow *UnitOfWork
}

func (r *productRepository) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneProduct(aggregate)
	if err != nil {
		return err
	}

	return r.uow.exec(func(s *state) error {
		if _, exists := s.products[stored.ID()]; exists {
			return errs.NewPersistenceFailureError("add product", errors.New("duplicate product id"))
		}
		for _, other := range s.products {
			if other.Sku() == stored.Sku() {
				return errs.NewPersistenceFailureError("add product", errors.New("sku is already registered"))
			}
		}
		s.products[stored.ID()] = stored
		return nil
	}, aggregate)
}

func (r *productRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	stored, ok := r.uow.view().products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("productId", id.String())
	}
	return cloneProduct(stored)
}

func (r *productRepository) ListPaged(
	_ context.Context,
	page, pageSize int,
	filter ports.ProductListFilter,
	sortBy ports.ProductSortBy,
	direction paging.Direction,
) ([]*product.Product, int, error) {
	var predicates []func(*product.Product) bool
	if search := normalizeSearch(filter.Search); search != "" {
		predicates = append(predicates, func(p *product.Product) bool {
			return strings.Contains(strings.ToLower(p.Sku()), search) ||
				strings.Contains(strings.ToLower(p.Name()), search)
		})
	}
	if filter.IsActive != nil {
		active := *filter.IsActive
		predicates = append(predicates, func(p *product.Product) bool { return p.IsActive() == active })
	}

	spec := paging.Spec[*product.Product]{
		Predicates: predicates,
		Compare:    productComparator(sortBy),
		Direction:  direction,
	}

	matched, total := paging.Apply(values(r.uow.view().products), spec, page, pageSize)
	products, err := cloneAll(matched, cloneProduct)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func productComparator(sortBy ports.ProductSortBy) func(a, b *product.Product) int {
	var primary func(a, b *product.Product) int
	switch sortBy {
	case ports.ProductSortBySku:
		primary = func(a, b *product.Product) int { return strings.Compare(a.Sku(), b.Sku()) }
	case ports.ProductSortByName:
		primary = func(a, b *product.Product) int { return strings.Compare(a.Name(), b.Name()) }
	case ports.ProductSortByPrice:
		primary = func(a, b *product.Product) int { return a.Price().Cmp(b.Price()) }
	default:
		primary = func(a, b *product.Product) int { return a.CreatedAtUTC().Compare(b.CreatedAtUTC()) }
	}

	return func(a, b *product.Product) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return a.ID().Compare(b.ID())
	}
}
