package http

import (
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers are the use cases the HTTP server dispatches to.
type Handlers struct {
	// Command handlers
	Login          commands.LoginCommandHandler
	RefreshToken   commands.RefreshTokenCommandHandler
	RevokeToken    commands.RevokeTokenCommandHandler
	RegisterUser   commands.RegisterUserCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	ChangeStatus   commands.ChangeOrderStatusCommandHandler
	CreateCustomer commands.CreateCustomerCommandHandler
	CreateProduct  commands.CreateProductCommandHandler

	// Query handlers
	ListOrders    queries.ListOrdersQueryHandler
	GetOrder      queries.GetOrderByIDQueryHandler
	ListCustomers queries.ListCustomersQueryHandler
	GetCustomer   queries.GetCustomerByIDQueryHandler
	ListProducts  queries.ListProductsQueryHandler
	GetProduct    queries.GetProductByIDQueryHandler
}

// Server implements servers.ServerInterface.
// It translates HTTP requests into commands and queries and their results into envelopes.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

func clientInfo(ctx echo.Context) refreshtoken.ClientInfo {
	return refreshtoken.ClientInfo{
		IP:        ctx.RealIP(),
		UserAgent: ctx.Request().UserAgent(),
	}
}

func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return newRequestValidationError("Invalid request body")
	}
	return nil
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(body.Username, body.Password, clientInfo(ctx))
	if err != nil {
		return err
	}

	tokens, err := s.h.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Login successful", toAuthTokens(tokens))
}

// RefreshToken handles POST /api/v1/auth/refresh.
func (s *Server) RefreshToken(ctx echo.Context) error {
	var body servers.RefreshRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokenCommand(body.RefreshToken, clientInfo(ctx))
	if err != nil {
		return err
	}

	tokens, err := s.h.RefreshToken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Token refreshed", toAuthTokens(tokens))
}

// RevokeToken handles POST /api/v1/auth/revoke. Without a token in the body the caller's
// latest active refresh token is revoked.
func (s *Server) RevokeToken(ctx echo.Context) error {
	var body servers.RevokeRequest
	if ctx.Request().ContentLength != 0 {
		if err := bindBody(ctx, &body); err != nil {
			return err
		}
	}

	caller, _ := Principal(ctx)
	refreshToken := ""
	if body.RefreshToken != nil {
		refreshToken = *body.RefreshToken
	}

	cmd, err := commands.NewRevokeTokenCommand(caller.UserID, refreshToken, clientInfo(ctx))
	if err != nil {
		return err
	}

	if err := s.h.RevokeToken.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Token revoked", nil)
}

// RegisterUser handles POST /api/v1/auth/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.RegisterRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(body.Username, body.Email, body.Password)
	if err != nil {
		return err
	}

	user, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "User registered", servers.RegisteredUser{
		UserId:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filter, err := orderListFilter(params)
	if err != nil {
		return err
	}
	if err := checkOrderSort(params.SortBy, params.SortDirection); err != nil {
		return err
	}

	query := queries.NewListOrdersQuery(
		deref(params.Page), deref(params.PageSize), filter, deref(params.SortBy), deref(params.SortDirection),
	)

	result, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Orders retrieved", toPage(result, toOrderSummary))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := createOrderCommand(body)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Order created", servers.CreatedOrder{
		OrderId:     created.OrderID,
		TotalAmount: money(created.TotalAmount),
		Status:      created.Status,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Order retrieved", toOrder(details))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	result, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Order cancelled", servers.OrderStatus{
		OrderId: result.OrderID,
		Status:  result.Status,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.OrderStatusChange
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return err
	}
	target, err := parseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return err
	}

	result, err := s.h.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Order status changed", servers.OrderStatus{
		OrderId: result.OrderID,
		Status:  result.Status,
	})
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context, params servers.ListCustomersParams) error {
	if err := checkCustomerSort(params.SortBy, params.SortDirection); err != nil {
		return err
	}

	query := queries.NewListCustomersQuery(
		deref(params.Page), deref(params.PageSize),
		customerListFilter(params),
		deref(params.SortBy), deref(params.SortDirection),
	)

	result, err := s.h.ListCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Customers retrieved", toPage(result, toCustomer))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(toProfile(body))
	if err != nil {
		return err
	}

	created, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Customer created", servers.CreatedCustomer{
		CustomerId:   created.CustomerID,
		CreatedAtUtc: created.CreatedAtUTC,
	})
}

// GetCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomer(ctx echo.Context, customerId openapi_types.UUID) error {
	id, err := toKernelUUID(customerId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerByIDQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Customer retrieved", toCustomer(details))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	if err := checkProductSort(params.SortBy, params.SortDirection); err != nil {
		return err
	}

	query := queries.NewListProductsQuery(
		deref(params.Page), deref(params.PageSize),
		productListFilter(params),
		deref(params.SortBy), deref(params.SortDirection),
	)

	result, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Products retrieved", toPage(result, toProduct))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(body.Sku, body.Name, body.Price)
	if err != nil {
		return err
	}

	created, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Product created", servers.CreatedProduct{
		ProductId: created.ProductID,
		Sku:       created.Sku,
		Price:     money(created.Price),
	})
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := toKernelUUID(productId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductByIDQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Product retrieved", toProduct(details))
}
