package ports

import (
	"context"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/paging"
)

// CustomerListFilter narrows a customer listing.
type CustomerListFilter struct {
	// Search matches full name or email, case-insensitive substring. Blank applies no filter.
	Search string
}

type CustomerSortBy int

const (
	CustomerSortByCreatedAt CustomerSortBy = iota
	CustomerSortByFullName
	CustomerSortByEmail
)

// ParseCustomerSortBy maps a sort key name; unknown names give CustomerSortByCreatedAt.
func ParseCustomerSortBy(s string) CustomerSortBy {
	sortBy, _ := lookupCustomerSortBy(s)
	return sortBy
}

func IsCustomerSortBy(s string) bool {
	_, ok := lookupCustomerSortBy(s)
	return ok
}

func lookupCustomerSortBy(s string) (CustomerSortBy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "createdatutc", "createdat":
		return CustomerSortByCreatedAt, true
	case "fullname":
		return CustomerSortByFullName, true
	case "email":
		return CustomerSortByEmail, true
	default:
		return CustomerSortByCreatedAt, false
	}
}

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer. Duplicate email or document number fails at commit
	// (or earlier) with errs.PersistenceFailureError.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get returns errs.ObjectNotFoundError when the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	ListPaged(
		ctx context.Context,
		page, pageSize int,
		filter CustomerListFilter,
		sortBy CustomerSortBy,
		direction paging.Direction,
	) ([]*customer.Customer, int, error)
}
