package productrepo

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/adapters/out/postgres/pgsql"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"

	"gorm.io/gorm"
)

type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add product", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) ListPaged(
	ctx context.Context,
	page, pageSize int,
	filter ports.ProductListFilter,
	sortBy ports.ProductSortBy,
	direction paging.Direction,
) ([]*product.Product, int, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []ProductDTO
	if err := r.filtered(ctx, filter).
		Order(pgsql.OrderBy(sortColumn(sortBy), direction)).
		Offset(paging.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, int(total), nil
}

func (r *GormProductRepository) filtered(ctx context.Context, filter ports.ProductListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&ProductDTO{})
	if filter.Search != "" {
		pattern := pgsql.ContainsPattern(filter.Search)
		q = q.Where("LOWER(sku) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	return q
}

func sortColumn(sortBy ports.ProductSortBy) string {
	switch sortBy {
	case ports.ProductSortBySku:
		return "sku"
	case ports.ProductSortByName:
		return "name"
	case ports.ProductSortByPrice:
		return "price"
	default:
		return "created_at_utc"
	}
}
