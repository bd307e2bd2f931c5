package http

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/paging"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func parseStatus(s string) (order.Status, error) {
	return order.ParseStatus(s)
}

func orderListFilter(params servers.ListOrdersParams) (ports.OrderListFilter, error) {
	var filter ports.OrderListFilter

	if status := strings.TrimSpace(deref(params.Status)); status != "" {
		if _, err := order.ParseStatus(status); err != nil {
			return ports.OrderListFilter{}, err
		}
		filter.Status = status
	}

	if params.CustomerId != nil {
		id, err := toKernelUUID(*params.CustomerId)
		if err != nil {
			return ports.OrderListFilter{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		filter.CustomerID = &id
	}

	if params.CreatedFrom != nil {
		from := params.CreatedFrom.UTC()
		filter.CreatedFrom = &from
	}
	if params.CreatedTo != nil {
		to := params.CreatedTo.UTC()
		filter.CreatedTo = &to
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedFrom.After(*filter.CreatedTo) {
		return ports.OrderListFilter{}, errs.NewValueIsInvalidErrorWithCause(
			"createdFrom", errors.New("createdFrom must not be later than createdTo"),
		)
	}

	return filter, nil
}

func checkSort(sortBy, sortDirection *string, isSortKey func(string) bool) error {
	var errList []error
	if key := strings.TrimSpace(deref(sortBy)); key != "" && !isSortKey(key) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("sortBy", errors.New("unknown sort key "+key)))
	}
	if dir := strings.TrimSpace(deref(sortDirection)); dir != "" && !paging.IsDirection(dir) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("sortDirection", errors.New("expected asc or desc")))
	}
	return errors.Join(errList...)
}

func checkOrderSort(sortBy, sortDirection *string) error {
	return checkSort(sortBy, sortDirection, ports.IsOrderSortBy)
}

func checkCustomerSort(sortBy, sortDirection *string) error {
	return checkSort(sortBy, sortDirection, ports.IsCustomerSortBy)
}

func checkProductSort(sortBy, sortDirection *string) error {
	return checkSort(sortBy, sortDirection, ports.IsProductSortBy)
}

func customerListFilter(params servers.ListCustomersParams) ports.CustomerListFilter {
	return ports.CustomerListFilter{Search: deref(params.Search)}
}

func productListFilter(params servers.ListProductsParams) ports.ProductListFilter {
	return ports.ProductListFilter{
		Search:   deref(params.Search),
		IsActive: params.IsActive,
	}
}

func createOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	if len(body.Items) == 0 {
		return commands.CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause(
			"items", errors.New("an order needs at least one item"),
		)
	}

	customerID, err := toKernelUUID(body.CustomerId)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	items := make([]commands.CreateOrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := toKernelUUID(item.ProductId)
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
		}
		items = append(items, commands.CreateOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return commands.NewCreateOrderCommand(customerID, items)
}

func toProfile(body servers.NewCustomer) customer.Profile {
	profile := customer.Profile{
		FullName:       body.FullName,
		Email:          body.Email,
		DocumentNumber: body.DocumentNumber,
		PhoneNumber:    body.PhoneNumber,
		CustomerType:   deref(body.CustomerType),
		Street:         deref(body.Street),
		City:           deref(body.City),
		State:          deref(body.State),
		PostalCode:     deref(body.PostalCode),
		Country:        deref(body.Country),
		Notes:          deref(body.Notes),
	}
	if body.BirthDate != nil {
		birthDate := body.BirthDate.Time
		profile.BirthDate = &birthDate
	}
	return profile
}

func money(d decimal.Decimal) servers.Money {
	return json.Number(d.StringFixed(2))
}

func toPage[T, U any](result paging.Result[T], fn func(T) U) servers.Page[U] {
	items := make([]U, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, fn(item))
	}
	return servers.Page[U]{
		Items:      items,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	}
}

func toAuthTokens(tokens commands.AuthTokensResponse) servers.AuthTokens {
	return servers.AuthTokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
		ExpiresIn:    tokens.ExpiresInSeconds,
	}
}

func toOrderSummary(o queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		OrderId:      o.OrderID,
		CustomerId:   o.CustomerID,
		CreatedAtUtc: o.CreatedAtUTC,
		Status:       o.Status,
		TotalAmount:  money(o.TotalAmount),
		ItemsCount:   o.ItemsCount,
	}
}

func toOrder(o queries.OrderDetails) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, servers.OrderItem{
			ItemId:    item.ItemID,
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
			LineTotal: money(item.LineTotal),
		})
	}
	return servers.Order{
		OrderId:      o.OrderID,
		CustomerId:   o.CustomerID,
		CreatedAtUtc: o.CreatedAtUTC,
		Status:       o.Status,
		TotalAmount:  money(o.TotalAmount),
		Items:        items,
	}
}

func toCustomer(c queries.CustomerDetails) servers.Customer {
	out := servers.Customer{
		CustomerId:     c.CustomerID,
		FullName:       c.Profile.FullName,
		Email:          c.Profile.Email,
		DocumentNumber: c.Profile.DocumentNumber,
		PhoneNumber:    c.Profile.PhoneNumber,
		CustomerType:   c.Profile.CustomerType,
		Street:         c.Profile.Street,
		City:           c.Profile.City,
		State:          c.Profile.State,
		PostalCode:     c.Profile.PostalCode,
		Country:        c.Profile.Country,
		Notes:          c.Profile.Notes,
		IsActive:       c.IsActive,
		CreatedAtUtc:   c.CreatedAtUTC,
	}
	if c.Profile.BirthDate != nil {
		out.BirthDate = &openapi_types.Date{Time: c.Profile.BirthDate.In(time.UTC)}
	}
	return out
}

func toProduct(p queries.ProductDetails) servers.Product {
	return servers.Product{
		ProductId:    p.ProductID,
		Sku:          p.Sku,
		Name:         p.Name,
		Price:        money(p.Price),
		IsActive:     p.IsActive,
		CreatedAtUtc: p.CreatedAtUTC,
	}
}
