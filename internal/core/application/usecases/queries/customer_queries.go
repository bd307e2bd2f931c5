package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
	"ordering/internal/pkg/paging"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
	ErrGetCustomerByIDQueryIsNotConstructed = errors.New(
		"GetCustomerByIDQuery must be created via NewGetCustomerByIDQuery constructor",
	)
)

// ListCustomersQuery pages through customers. Sort keys: fullName, email, createdAtUtc.
type ListCustomersQuery struct {
	page      int
	pageSize  int
	filter    ports.CustomerListFilter
	sortBy    ports.CustomerSortBy
	direction paging.Direction

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(
	page, pageSize int,
	filter ports.CustomerListFilter,
	sortBy, sortDirection string,
) ListCustomersQuery {
	return ListCustomersQuery{
		page:      paging.ClampPage(page),
		pageSize:  paging.ClampPageSize(pageSize),
		filter:    filter,
		sortBy:    ports.ParseCustomerSortBy(sortBy),
		direction: paging.ParseDirection(sortDirection),
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type GetCustomerByIDQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerByIDQuery(customerID kernel.UUID) (GetCustomerByIDQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	return GetCustomerByIDQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByIDQueryIsNotConstructed)
}

// CustomerDetails is the read model of a customer.
type CustomerDetails struct {
	CustomerID   string
	Profile      customer.Profile
	IsActive     bool
	CreatedAtUTC time.Time
}

func toCustomerDetails(c *customer.Customer) CustomerDetails {
	return CustomerDetails{
		CustomerID:   c.ID().String(),
		Profile:      c.Profile(),
		IsActive:     c.IsActive(),
		CreatedAtUTC: c.CreatedAtUTC(),
	}
}
