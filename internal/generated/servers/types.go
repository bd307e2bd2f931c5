// Package servers holds the HTTP contract of the ordering API: wire types, the server
// interface with its parameter binding, and the embedded OpenAPI document.
package servers

import (
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Envelope wraps every successful response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	TraceId string `json:"traceId"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success    bool     `json:"success"`
	ErrorCode  string   `json:"errorCode"`
	Message    string   `json:"message"`
	StatusCode int      `json:"statusCode"`
	Errors     []string `json:"errors"`
	TraceId    string   `json:"traceId"`
}

// Money is rendered as a JSON number with two fraction digits.
type Money = json.Number

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RevokeRequest struct {
	RefreshToken *string `json:"refreshToken,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

type RegisteredUser struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type NewOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
	UnitPrice decimal.Decimal    `json:"unitPrice"`
}

type NewOrder struct {
	CustomerId openapi_types.UUID `json:"customerId"`
	Items      []NewOrderItem     `json:"items"`
}

type CreatedOrder struct {
	OrderId     string `json:"orderId"`
	TotalAmount Money  `json:"totalAmount"`
	Status      string `json:"status"`
}

type OrderStatusChange struct {
	Status string `json:"status"`
}

type OrderStatus struct {
	OrderId string `json:"orderId"`
	Status  string `json:"status"`
}

type OrderSummary struct {
	OrderId      string    `json:"orderId"`
	CustomerId   string    `json:"customerId"`
	CreatedAtUtc time.Time `json:"createdAtUtc"`
	Status       string    `json:"status"`
	TotalAmount  Money     `json:"totalAmount"`
	ItemsCount   int       `json:"itemsCount"`
}

type OrderItem struct {
	ItemId    string `json:"itemId"`
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
	LineTotal Money  `json:"lineTotal"`
}

type Order struct {
	OrderId      string      `json:"orderId"`
	CustomerId   string      `json:"customerId"`
	CreatedAtUtc time.Time   `json:"createdAtUtc"`
	Status       string      `json:"status"`
	TotalAmount  Money       `json:"totalAmount"`
	Items        []OrderItem `json:"items"`
}

type NewCustomer struct {
	FullName       string              `json:"fullName"`
	Email          string              `json:"email"`
	DocumentNumber string              `json:"documentNumber"`
	PhoneNumber    string              `json:"phoneNumber"`
	CustomerType   *string             `json:"customerType,omitempty"`
	BirthDate      *openapi_types.Date `json:"birthDate,omitempty"`
	Street         *string             `json:"street,omitempty"`
	City           *string             `json:"city,omitempty"`
	State          *string             `json:"state,omitempty"`
	PostalCode     *string             `json:"postalCode,omitempty"`
	Country        *string             `json:"country,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
}

type CreatedCustomer struct {
	CustomerId   string    `json:"customerId"`
	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

type Customer struct {
	CustomerId     string              `json:"customerId"`
	FullName       string              `json:"fullName"`
	Email          string              `json:"email"`
	DocumentNumber string              `json:"documentNumber"`
	PhoneNumber    string              `json:"phoneNumber"`
	CustomerType   string              `json:"customerType"`
	BirthDate      *openapi_types.Date `json:"birthDate,omitempty"`
	Street         string              `json:"street"`
	City           string              `json:"city"`
	State          string              `json:"state"`
	PostalCode     string              `json:"postalCode"`
	Country        string              `json:"country"`
	Notes          string              `json:"notes"`
	IsActive       bool                `json:"isActive"`
	CreatedAtUtc   time.Time           `json:"createdAtUtc"`
}

type NewProduct struct {
	Sku   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CreatedProduct struct {
	ProductId string `json:"productId"`
	Sku       string `json:"sku"`
	Price     Money  `json:"price"`
}

type Product struct {
	ProductId    string    `json:"productId"`
	Sku          string    `json:"sku"`
	Name         string    `json:"name"`
	Price        Money     `json:"price"`
	IsActive     bool      `json:"isActive"`
	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

type ListOrdersParams struct {
	Page          *int                `form:"page,omitempty" json:"page,omitempty"`
	PageSize      *int                `form:"pageSize,omitempty" json:"pageSize,omitempty"`
	Status        *string             `form:"status,omitempty" json:"status,omitempty"`
	CustomerId    *openapi_types.UUID `form:"customerId,omitempty" json:"customerId,omitempty"`
	CreatedFrom   *time.Time          `form:"createdFrom,omitempty" json:"createdFrom,omitempty"`
	CreatedTo     *time.Time          `form:"createdTo,omitempty" json:"createdTo,omitempty"`
	SortBy        *string             `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortDirection *string             `form:"sortDirection,omitempty" json:"sortDirection,omitempty"`
}

type ListCustomersParams struct {
	Page          *int    `form:"page,omitempty" json:"page,omitempty"`
	PageSize      *int    `form:"pageSize,omitempty" json:"pageSize,omitempty"`
	Search        *string `form:"search,omitempty" json:"search,omitempty"`
	SortBy        *string `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortDirection *string `form:"sortDirection,omitempty" json:"sortDirection,omitempty"`
}

type ListProductsParams struct {
	Page          *int    `form:"page,omitempty" json:"page,omitempty"`
	PageSize      *int    `form:"pageSize,omitempty" json:"pageSize,omitempty"`
	Search        *string `form:"search,omitempty" json:"search,omitempty"`
	IsActive      *bool   `form:"isActive,omitempty" json:"isActive,omitempty"`
	SortBy        *string `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortDirection *string `form:"sortDirection,omitempty" json:"sortDirection,omitempty"`
}
