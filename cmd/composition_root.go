package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/eventlog"
	"ordering/internal/adapters/out/identity"
	"ordering/internal/adapters/out/memory"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/userrepo"
	redisstore "ordering/internal/adapters/out/redis"
	"ordering/internal/adapters/out/security"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger
	clock  ports.Clock

	gormDB      *gorm.DB
	redis       *goredis.Client
	uowFactory  ports.UnitOfWorkFactory
	identity    *identity.Provider
	tokens      *security.JWTTokenService
	idempotency ports.IdempotencyStore
	registry    *prometheus.Registry
}

// NewCompositionRoot opens the configured storage and builds the shared adapters.
func NewCompositionRoot(ctx context.Context, cfg Config, clock ports.Clock, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dispatcher := eventlog.NewDispatcher(logger)
	var users identity.UserStore

	switch cfg.Database.Driver {
	case StorageMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), dispatcher, logger)
		users = memory.NewUserStore()
	case StoragePostgres:
		db, err := postgres.Open(ctx, postgres.ConnectionOptions{
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}, logger)
		if err != nil {
			return nil, err
		}
		c.gormDB = db

		if cfg.Database.AutoMigrate {
			models := append(postgres.Models(), &userrepo.UserDTO{})
			if err := postgres.Migrate(ctx, db, models...); err != nil {
				_ = c.Close()
				return nil, err
			}
		}

		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db, dispatcher, logger)
		users = userrepo.NewGormUserStore(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Database.Driver)
	}

	c.identity = identity.NewProvider(users, identity.NewHasher(cfg.Security.BcryptCost), clock, logger)

	tokens, err := security.NewJWTTokenService(security.Config{
		Secret:               cfg.Security.JWTSecret,
		Issuer:               cfg.Security.Issuer,
		Audience:             cfg.Security.Audience,
		AccessTokenLifetime:  cfg.AccessTokenLifetime(),
		RefreshTokenLifetime: cfg.RefreshTokenLifetime(),
	}, clock)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.tokens = tokens

	if cfg.Redis.Addr != "" {
		c.redis = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := redisstore.NewIdempotencyStore(c.redis, cfg.Idempotency.TTL)
		if err := store.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		c.idempotency = store
	} else {
		c.idempotency = memory.NewIdempotencyStore(cfg.Idempotency.TTL, clock)
	}

	return c, nil
}

// SeedUsers creates the default accounts that do not exist yet.
func (c *CompositionRoot) SeedUsers(ctx context.Context) error {
	return c.identity.Seed(ctx, identity.DefaultSeedUsers())
}

// Close releases the database and redis connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.redis != nil {
		errList = append(errList, c.redis.Close())
	}
	if c.gormDB != nil {
		if sqlDB, err := c.gormDB.DB(); err == nil {
			errList = append(errList, sqlDB.Close())
		}
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) refreshTokenUoWFactory() commands.RefreshTokenUoWFactory {
	return FuncRefreshTokenUoWFactory(func() commands.RefreshTokenUoW {
		return c.uowFactory.Create()
	})
}

// reader returns a unit of work that is never begun; its repositories read committed state.
func (c *CompositionRoot) reader() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.refreshTokenUoWFactory(), c.identity, c.tokens, c.clock)
}

func (c *CompositionRoot) CreateRefreshTokenCommandHandler() commands.RefreshTokenCommandHandler {
	return commands.NewRefreshTokenCommandHandler(c.refreshTokenUoWFactory(), c.identity, c.tokens, c.clock)
}

func (c *CompositionRoot) CreateRevokeTokenCommandHandler() commands.RevokeTokenCommandHandler {
	return commands.NewRevokeTokenCommandHandler(c.refreshTokenUoWFactory(), c.tokens, c.clock)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.identity)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.reader().OrderRepository())
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.reader().CustomerRepository())
}

func (c *CompositionRoot) CreateGetCustomerByIDQueryHandler() queries.GetCustomerByIDQueryHandler {
	return queries.NewGetCustomerByIDQueryHandler(c.reader().CustomerRepository())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.reader().ProductRepository())
}

func (c *CompositionRoot) CreateGetProductByIDQueryHandler() queries.GetProductByIDQueryHandler {
	return queries.NewGetProductByIDQueryHandler(c.reader().ProductRepository())
}

func (c *CompositionRoot) CreateGetRefreshTokenStatsQueryHandler() queries.GetRefreshTokenStatsQueryHandler {
	return queries.NewGetRefreshTokenStatsQueryHandler(c.reader().RefreshTokenRepository(), c.clock)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		Login:          c.CreateLoginCommandHandler(),
		RefreshToken:   c.CreateRefreshTokenCommandHandler(),
		RevokeToken:    c.CreateRevokeTokenCommandHandler(),
		RegisterUser:   c.CreateRegisterUserCommandHandler(),
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		ChangeStatus:   c.CreateChangeOrderStatusCommandHandler(),
		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		CreateProduct:  c.CreateCreateProductCommandHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderByIDQueryHandler(),
		ListCustomers:  c.CreateListCustomersQueryHandler(),
		GetCustomer:    c.CreateGetCustomerByIDQueryHandler(),
		ListProducts:   c.CreateListProductsQueryHandler(),
		GetProduct:     c.CreateGetProductByIDQueryHandler(),
	})

	return httpin.NewRouter(httpin.RouterConfig{
		Server:         server,
		Tokens:         c.tokens,
		Idempotency:    c.idempotency,
		Registerer:     c.registry,
		Gatherer:       c.registry,
		Logger:         c.logger,
		BodyLimit:      c.cfg.HTTP.BodyLimit,
		AllowedOrigins: c.cfg.HTTP.AllowedOrigins,
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	audit, err := jobs.NewRefreshTokenAuditJob(
		c.CreateGetRefreshTokenStatsQueryHandler(),
		c.cfg.Jobs.TokenAuditSchedule,
		c.registry,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(audit), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncRefreshTokenUoWFactory func() commands.RefreshTokenUoW

func (f FuncRefreshTokenUoWFactory) Create() commands.RefreshTokenUoW {
	return f()
}
