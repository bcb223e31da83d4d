package cmd

import (
	"fmt"
	"log/slog"

	"procurement/internal/adapters/out/accessctl"
	"procurement/internal/adapters/out/ledger"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/verificationrepo"
	redisadapter "procurement/internal/adapters/out/redis"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	cache       ports.VerificationCache
	verifier    ports.InvoiceVerifier
	accessScope *accessctl.StaticScope
	config      Config
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	cache, err := buildVerificationCache(config, gormDB)
	if err != nil {
		return CompositionRoot{}, err
	}

	accessScope, err := buildAccessScope(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:       cache,
		verifier:    ledger.NewHTTPVerifier(config.LedgerBaseURL),
		accessScope: accessScope,
		config:      config,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(
		c.createUoWFactory(), commands.NewOrderLifecycleManager(),
	)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(
		c.createUoWFactory(), commands.NewOrderLifecycleManager(),
	)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(
		c.createUoWFactory(), commands.NewOrderLifecycleManager(),
	)
}

func (c *CompositionRoot) CreateValidateDeliveryCommandHandler() commands.ValidateDeliveryCommandHandler {
	return commands.NewValidateDeliveryCommandHandler(
		c.createUoWFactory(), commands.NewOrderLifecycleManager(),
	)
}

func (c *CompositionRoot) CreateDevalidateDeliveryCommandHandler() commands.DevalidateDeliveryCommandHandler {
	return commands.NewDevalidateDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateVerifyInvoicesCommandHandler() commands.VerifyInvoicesCommandHandler {
	return commands.NewVerifyInvoicesCommandHandler(
		c.createUoWFactory(), c.cache, c.verifier, c.config.VerifyTimeout, c.logger,
	)
}

func (c *CompositionRoot) CreateClearVerificationCacheCommandHandler() commands.ClearVerificationCacheCommandHandler {
	return commands.NewClearVerificationCacheCommandHandler(c.cache)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckInvoiceUsageQueryHandler() queries.CheckInvoiceUsageQueryHandler {
	return queries.NewCheckInvoiceUsageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingReconciliationsQueryHandler() queries.GetPendingReconciliationsQueryHandler {
	return queries.NewGetPendingReconciliationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) AccessScope() ports.AccessScope {
	return c.accessScope
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func buildVerificationCache(config Config, gormDB *gorm.DB) (ports.VerificationCache, error) {
	if config.RedisURL == "" {
		return verificationrepo.NewGormVerificationCache(gormDB), nil
	}

	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redisadapter.NewVerificationCache(redis.NewClient(opts), config.CacheTTL), nil
}

func buildAccessScope(config Config) (*accessctl.StaticScope, error) {
	defaultStores := make([]kernel.UUID, 0, len(config.DefaultStoreIDs))
	for _, raw := range config.DefaultStoreIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid default store id %q: %w", raw, err)
		}
		defaultStores = append(defaultStores, id)
	}

	scope := accessctl.NewStaticScope(defaultStores)
	for _, raw := range config.ElevatedUserIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid elevated user id %q: %w", raw, err)
		}
		scope.Elevate(id)
	}

	return scope, nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
