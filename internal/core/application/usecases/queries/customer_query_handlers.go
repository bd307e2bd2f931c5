package queries

import (
	"context"

	"ordering/internal/pkg/paging"
)

type ListCustomersQueryHandler struct {
	customers CustomerReader
}

func NewListCustomersQueryHandler(customers CustomerReader) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{customers: customers}
}

func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (paging.Result[CustomerDetails], error) {
	if err := query.Validate(); err != nil {
		return paging.Result[CustomerDetails]{}, err
	}

	customers, total, err := h.customers.ListPaged(
		ctx, query.page, query.pageSize, query.filter, query.sortBy, query.direction,
	)
	if err != nil {
		return paging.Result[CustomerDetails]{}, err
	}

	return paging.MapResult(paging.NewResult(customers, query.page, query.pageSize, total), toCustomerDetails), nil
}

type GetCustomerByIDQueryHandler struct {
	customers CustomerReader
}

func NewGetCustomerByIDQueryHandler(customers CustomerReader) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{customers: customers}
}

// Handle returns errs.ObjectNotFoundError when the customer does not exist.
func (h GetCustomerByIDQueryHandler) Handle(ctx context.Context, query GetCustomerByIDQuery) (CustomerDetails, error) {
	if err := query.Validate(); err != nil {
		return CustomerDetails{}, err
	}

	c, err := h.customers.Get(ctx, query.customerID)
	if err != nil {
		return CustomerDetails{}, err
	}

	return toCustomerDetails(c), nil
}
