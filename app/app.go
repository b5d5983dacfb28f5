package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"snackshop/app/controller"
	"snackshop/app/router"
	"snackshop/cart"
	"snackshop/db"
	"snackshop/repository"
	"snackshop/service"
	"snackshop/settings"
	"snackshop/simulator"
)

// App holds the wired application
type App struct {
	Handler  http.Handler
	Engine   *cart.Engine
	Settings *settings.Store
	Registry *prometheus.Registry

	closers []func()
}

// Option configures Initialize
type Option func(*options)

type options struct {
	simulatorOpts []simulator.Option
}

// WithSimulatorOptions passes extra options to the network simulator
func WithSimulatorOptions(opts ...simulator.Option) Option {
	return func(o *options) { o.simulatorOpts = append(o.simulatorOpts, opts...) }
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg Config, logger *zap.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		Settings: settings.New(cfg.Settings),
		Registry: prometheus.NewRegistry(),
	}

	// Initialize simulator
	simOpts := append([]simulator.Option{
		simulator.WithMetrics(simulator.NewMetrics(a.Registry)),
		simulator.WithLogger(logger.Named("simulator")),
	}, o.simulatorOpts...)
	sim := simulator.New(a.Settings, simOpts...)

	// Initialize catalog
	catalogRepo, err := loadCatalog(cfg.CatalogSeedPath)
	if err != nil {
		return nil, err
	}
	catalogService := service.NewCatalogService(catalogRepo, sim, service.WithLogger(logger.Named("catalog")))

	// Initialize cart, restoring the saved session when persistence is configured
	a.Engine, err = a.initCart(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	// Create controllers
	controllers := &router.Controllers{
		Catalog:  controller.NewCatalogController(catalogService, a.Settings, logger.Named("http")),
		Cart:     controller.NewCartController(a.Engine, catalogService, a.Settings, logger.Named("http")),
		Checkout: controller.NewCheckoutController(catalogService, a.Settings, logger.Named("http")),
		Settings: controller.NewSettingsController(a.Settings, logger.Named("http")),
	}

	a.Handler = router.NewRouter(controllers, promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))

	logger.Info("application initialized",
		zap.Int("snacks", len(catalogRepo.All())),
		zap.Bool("persistence", cfg.DatabaseURL != ""),
		zap.Bool("offlineMode", cfg.Settings.OfflineMode),
		zap.Bool("simulateLatency", cfg.Settings.SimulateLatency),
		zap.Bool("simulateErrors", cfg.Settings.SimulateErrors))
	return a, nil
}

// Close releases the resources held by the application
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) initCart(ctx context.Context, cfg Config, logger *zap.Logger) (*cart.Engine, error) {
	if cfg.DatabaseURL == "" {
		return cart.NewEngine(), nil
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseURL, logger.Named("migrate")); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.closers = append(a.closers, pool.Close)

	snapshots := repository.NewCartSnapshotRepository(pool, cfg.CartSessionID)
	saved, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved cart: %w", err)
	}

	engine := cart.NewEngine(cart.WithObserver(cart.NewSnapshotWriter(snapshots, logger.Named("cart"))))
	engine.Restore(saved)
	logger.Info("cart restored", zap.String("session", cfg.CartSessionID), zap.Int("lines", engine.Len()))
	return engine, nil
}

func loadCatalog(path string) (*repository.CatalogRepository, error) {
	if path == "" {
		repo, err := repository.NewCatalogRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return repo, nil
	}
	return repository.NewCatalogRepositoryFromFile(path)
}
