package http

import (
	"errors"
	"log/slog"

	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultBodyLimit = "1M"

// RouterConfig carries what NewRouter wires into the echo instance.
type RouterConfig struct {
	Server      *Server
	Tokens      ports.TokenService
	Idempotency ports.IdempotencyStore
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger

	// BodyLimit caps request bodies, e.g. "1M". Empty means the default.
	BodyLimit string
	// AllowedOrigins enables CORS for the listed origins when not empty.
	AllowedOrigins []string
}

// NewRouter builds the echo instance serving the API, health, metrics and Swagger UI.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	if cfg.Server == nil || cfg.Tokens == nil || cfg.Idempotency == nil || cfg.Logger == nil {
		return nil, errors.New("http router: server, tokens, idempotency store and logger are required")
	}
	if cfg.Registerer == nil || cfg.Gatherer == nil {
		registry := prometheus.NewRegistry()
		cfg.Registerer, cfg.Gatherer = registry, registry
	}
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = defaultBodyLimit
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(middleware.Recover())
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:  cfg.AllowedOrigins,
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, HeaderIdempotencyKey},
			ExposeHeaders: []string{echo.HeaderXRequestID, HeaderIdempotentReplayed},
		}))
	}
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(Authorize(cfg.Tokens, RoutePolicies()))
	e.Use(validator)
	e.Use(Idempotency(cfg.Idempotency, cfg.Logger, "POST /api/v1/orders"))

	e.GET("/health", healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", SwaggerHandler())

	servers.RegisterHandlers(e, cfg.Server)

	return e, nil
}
