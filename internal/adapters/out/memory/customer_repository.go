package memory

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"
)

type customerRepository struct {
	uow *UnitOfWork
}

func (r *customerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneCustomer(aggregate)
	if err != nil {
		return err
	}

	return r.uow.exec(func(s *state) error {
		if _, exists := s.customers[stored.ID()]; exists {
			return errs.NewPersistenceFailureError("add customer", errors.New("duplicate customer id"))
		}
		for _, other := range s.customers {
			if strings.EqualFold(other.Email(), stored.Email()) {
				return errs.NewPersistenceFailureError("add customer", errors.New("email is already registered"))
			}
			if other.Profile().DocumentNumber == stored.Profile().DocumentNumber {
				return errs.NewPersistenceFailureError("add customer", errors.New("document number is already registered"))
			}
		}
		s.customers[stored.ID()] = stored
		return nil
	}, aggregate)
}

func (r *customerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	stored, ok := r.uow.view().customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customerId", id.String())
	}
	return cloneCustomer(stored)
}

func (r *customerRepository) ListPaged(
	_ context.Context,
	page, pageSize int,
	filter ports.CustomerListFilter,
	sortBy ports.CustomerSortBy,
	direction paging.Direction,
) ([]*customer.Customer, int, error) {
	var predicates []func(*customer.Customer) bool
	if search := normalizeSearch(filter.Search); search != "" {
		predicates = append(predicates, func(c *customer.Customer) bool {
			return strings.Contains(strings.ToLower(c.FullName()), search) ||
				strings.Contains(strings.ToLower(c.Email()), search)
		})
	}

	spec := paging.Spec[*customer.Customer]{
		Predicates: predicates,
		Compare:    customerComparator(sortBy),
		Direction:  direction,
	}

	matched, total := paging.Apply(values(r.uow.view().customers), spec, page, pageSize)
	customers, err := cloneAll(matched, cloneCustomer)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func customerComparator(sortBy ports.CustomerSortBy) func(a, b *customer.Customer) int {
	var primary func(a, b *customer.Customer) int
	switch sortBy {
	case ports.CustomerSortByFullName:
		primary = func(a, b *customer.Customer) int { return strings.Compare(a.FullName(), b.FullName()) }
	case ports.CustomerSortByEmail:
		primary = func(a, b *customer.Customer) int { return strings.Compare(a.Email(), b.Email()) }
	default:
		primary = func(a, b *customer.Customer) int { return a.CreatedAtUTC().Compare(b.CreatedAtUTC()) }
	}

	return func(a, b *customer.Customer) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return a.ID().Compare(b.ID())
	}
}

func normalizeSearch(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}
