package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/adapters/out/postgres/pgsql"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status. Lines never change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return pgerr.Classify("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items", orderedItems).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListPaged filters, counts, sorts and slices in SQL. The id column breaks ties so pages
// never overlap.
func (r *GormOrderRepository) ListPaged(
	ctx context.Context,
	page, pageSize int,
	filter ports.OrderListFilter,
	sortBy ports.OrderSortBy,
	direction paging.Direction,
) ([]*order.Order, int, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []*order.Order{}, 0, nil
	}

	var dtos []OrderDTO
	if err := r.filtered(ctx, filter).
		Preload("Items", orderedItems).
		Order(orderClause(sortBy, direction)).
		Offset(paging.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	return orders, int(total), nil
}

func (r *GormOrderRepository) filtered(ctx context.Context, filter ports.OrderListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&OrderDTO{})

	if status, ok := filter.StatusFilter(); ok {
		q = q.Where("status = ?", int(status))
	}
	if filter.CustomerID != nil && filter.CustomerID.Validate() == nil {
		q = q.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at_utc >= ?", filter.CreatedFrom.UTC())
	}
	if filter.CreatedTo != nil {
		q = q.Where("created_at_utc <= ?", filter.CreatedTo.UTC())
	}

	return q
}

func orderClause(sortBy ports.OrderSortBy, direction paging.Direction) string {
	column := "created_at_utc"
	switch sortBy {
	case ports.OrderSortByCustomerID:
		column = "customer_id"
	case ports.OrderSortByStatus:
		column = "status"
	}

	return pgsql.OrderBy(column, direction)
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
