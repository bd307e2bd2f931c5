package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/v1/auth/login)
	Login(ctx echo.Context) error
	// (POST /api/v1/auth/refresh)
	RefreshToken(ctx echo.Context) error
	// (POST /api/v1/auth/revoke)
	RevokeToken(ctx echo.Context) error
	// (POST /api/v1/auth/register)
	RegisterUser(ctx echo.Context) error

	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /api/v1/customers)
	ListCustomers(ctx echo.Context, params ListCustomersParams) error
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (GET /api/v1/customers/{customerId})
	GetCustomer(ctx echo.Context, customerId openapi_types.UUID) error

	// (GET /api/v1/products)
	ListProducts(ctx echo.Context, params ListProductsParams) error
	// (POST /api/v1/products)
	CreateProduct(ctx echo.Context) error
	// (GET /api/v1/products/{productId})
	GetProduct(ctx echo.Context, productId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) RefreshToken(ctx echo.Context) error {
	return w.Handler.RefreshToken(ctx)
}

func (w *ServerInterfaceWrapper) RevokeToken(ctx echo.Context) error {
	return w.Handler.RevokeToken(ctx)
}

func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	return w.Handler.RegisterUser(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	query := ctx.QueryParams()

	if err := bindPaging(query, &params.Page, &params.PageSize); err != nil {
		return err
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", query, &params.Status); err != nil {
		return badParameter("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "customerId", query, &params.CustomerId); err != nil {
		return badParameter("customerId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "createdFrom", query, &params.CreatedFrom); err != nil {
		return badParameter("createdFrom", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "createdTo", query, &params.CreatedTo); err != nil {
		return badParameter("createdTo", err)
	}
	if err := bindSort(query, &params.SortBy, &params.SortDirection); err != nil {
		return err
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	var params ListCustomersParams
	query := ctx.QueryParams()

	if err := bindPaging(query, &params.Page, &params.PageSize); err != nil {
		return err
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", query, &params.Search); err != nil {
		return badParameter("search", err)
	}
	if err := bindSort(query, &params.SortBy, &params.SortDirection); err != nil {
		return err
	}

	return w.Handler.ListCustomers(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomer(ctx, customerID)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var params ListProductsParams
	query := ctx.QueryParams()

	if err := bindPaging(query, &params.Page, &params.PageSize); err != nil {
		return err
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", query, &params.Search); err != nil {
		return badParameter("search", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "isActive", query, &params.IsActive); err != nil {
		return badParameter("isActive", err)
	}
	if err := bindSort(query, &params.SortBy, &params.SortDirection); err != nil {
		return err
	}

	return w.Handler.ListProducts(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	productID, err := bindPathUUID(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, productID)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, badParameter(name, err)
	}
	return id, nil
}

func bindPaging(query map[string][]string, page, pageSize **int) error {
	if err := runtime.BindQueryParameter("form", true, false, "page", query, page); err != nil {
		return badParameter("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "pageSize", query, pageSize); err != nil {
		return badParameter("pageSize", err)
	}
	return nil
}

func bindSort(query map[string][]string, sortBy, sortDirection **string) error {
	if err := runtime.BindQueryParameter("form", true, false, "sortBy", query, sortBy); err != nil {
		return badParameter("sortBy", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "sortDirection", query, sortDirection); err != nil {
		return badParameter("sortDirection", err)
	}
	return nil
}

func badParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is the subset of echo.Echo and echo.Group the handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/auth/login", wrapper.Login)
	router.POST(baseURL+"/api/v1/auth/refresh", wrapper.RefreshToken)
	router.POST(baseURL+"/api/v1/auth/revoke", wrapper.RevokeToken)
	router.POST(baseURL+"/api/v1/auth/register", wrapper.RegisterUser)

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)

	router.GET(baseURL+"/api/v1/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/api/v1/customers/:customerId", wrapper.GetCustomer)

	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/products", wrapper.CreateProduct)
	router.GET(baseURL+"/api/v1/products/:productId", wrapper.GetProduct)
}
