package customerrepo

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/adapters/out/postgres/pgsql"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"

	"gorm.io/gorm"
)

type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add customer", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) ListPaged(
	ctx context.Context,
	page, pageSize int,
	filter ports.CustomerListFilter,
	sortBy ports.CustomerSortBy,
	direction paging.Direction,
) ([]*customer.Customer, int, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []CustomerDTO
	if err := r.filtered(ctx, filter).
		Order(pgsql.OrderBy(sortColumn(sortBy), direction)).
		Offset(paging.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}

	return customers, int(total), nil
}

func (r *GormCustomerRepository) filtered(ctx context.Context, filter ports.CustomerListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&CustomerDTO{})
	if filter.Search != "" {
		pattern := pgsql.ContainsPattern(filter.Search)
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	return q
}

func sortColumn(sortBy ports.CustomerSortBy) string {
	switch sortBy {
	case ports.CustomerSortByFullName:
		return "full_name"
	case ports.CustomerSortByEmail:
		return "email"
	default:
		return "created_at_utc"
	}
}
