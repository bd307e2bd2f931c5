package memory

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	return r.uow.exec(func(s *state) error {
		if _, exists := s.orders[stored.ID()]; exists {
			return errs.NewPersistenceFailureError("add order", errors.New("duplicate order id"))
		}
		s.orders[stored.ID()] = stored
		return nil
	}, aggregate)
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	return r.uow.exec(func(s *state) error {
		if _, exists := s.orders[stored.ID()]; !exists {
			return errs.NewObjectNotFoundError("orderId", stored.ID().String())
		}
		s.orders[stored.ID()] = stored
		return nil
	}, aggregate)
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	stored, ok := r.uow.view().orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return cloneOrder(stored)
}

func (r *orderRepository) ListPaged(
	_ context.Context,
	page, pageSize int,
	filter ports.OrderListFilter,
	sortBy ports.OrderSortBy,
	direction paging.Direction,
) ([]*order.Order, int, error) {
	spec := paging.Spec[*order.Order]{
		Predicates: orderPredicates(filter),
		Compare:    orderComparator(sortBy),
		Direction:  direction,
	}

	matched, total := paging.Apply(values(r.uow.view().orders), spec, page, pageSize)
	orders, err := cloneAll(matched, cloneOrder)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func orderPredicates(filter ports.OrderListFilter) []func(*order.Order) bool {
	var predicates []func(*order.Order) bool

	if status, ok := filter.StatusFilter(); ok {
		predicates = append(predicates, func(o *order.Order) bool { return o.Status() == status })
	}
	if filter.CustomerID != nil && filter.CustomerID.Validate() == nil {
		customerID := *filter.CustomerID
		predicates = append(predicates, func(o *order.Order) bool { return o.CustomerID().IsEqual(customerID) })
	}
	if filter.CreatedFrom != nil {
		from := filter.CreatedFrom.UTC()
		predicates = append(predicates, func(o *order.Order) bool { return !o.CreatedAtUTC().Before(from) })
	}
	if filter.CreatedTo != nil {
		to := filter.CreatedTo.UTC()
		predicates = append(predicates, func(o *order.Order) bool { return !o.CreatedAtUTC().After(to) })
	}

	return predicates
}

func orderComparator(sortBy ports.OrderSortBy) func(a, b *order.Order) int {
	var primary func(a, b *order.Order) int
	switch sortBy {
	case ports.OrderSortByCustomerID:
		primary = func(a, b *order.Order) int { return a.CustomerID().Compare(b.CustomerID()) }
	case ports.OrderSortByStatus:
		primary = func(a, b *order.Order) int { return int(a.Status()) - int(b.Status()) }
	default:
		primary = func(a, b *order.Order) int { return a.CreatedAtUTC().Compare(b.CreatedAtUTC()) }
	}

	return func(a, b *order.Order) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return a.ID().Compare(b.ID())
	}
}
