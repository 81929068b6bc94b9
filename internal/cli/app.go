// Package cli wires favicache dependencies for the command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/build"
	"github.com/bnema/favicache/internal/infrastructure/config"
	"github.com/bnema/favicache/internal/infrastructure/favicon"
	"github.com/bnema/favicache/internal/infrastructure/xdg"
	"github.com/bnema/favicache/internal/logging"
)

// Options carries flag values that influence app construction.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Use cases
	ResolveIconUC *usecase.ResolveIconUseCase
	WarmIconsUC   *usecase.WarmIconsUseCase
	LocatePathsUC *usecase.LocatePathsUseCase

	// Services
	FaviconService *favicon.Service

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "favicon")

	fetcher := favicon.NewHTTPFetcher(favicon.FetchConfig{
		ConnectTimeout: cfg.Fetch.ConnectTimeout,
		RequestTimeout: cfg.Fetch.RequestTimeout,
		MaxBodyBytes:   cfg.Fetch.MaxBodyBytes,
		UserAgent:      cfg.Fetch.UserAgent,
	})

	faviconService, err := favicon.NewService(favicon.Config{
		CacheDir:         cfg.Cache.Dir,
		MemoryMaxEntries: cfg.Cache.MemoryMaxEntries,
		MemoryMaxBytes:   cfg.Cache.MemoryMaxBytes,
		IconSize:         cfg.Cache.IconSize,
		Sources: favicon.SourceConfig{
			PrimaryAPI:   cfg.Sources.PrimaryAPI,
			FallbackAPI:  cfg.Sources.FallbackAPI,
			FallbackSize: cfg.Sources.FallbackSize,
		},
	}, fetcher)
	if err != nil {
		return nil, fmt.Errorf("create favicon service: %w", err)
	}

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("cache_dir", cfg.Cache.Dir).
		Msg("favicache initialized")

	return &App{
		Config:         cfg,
		ConfigMgr:      mgr,
		Theme:          styles.NewTheme(),
		ResolveIconUC:  usecase.NewResolveIconUseCase(faviconService),
		WarmIconsUC:    usecase.NewWarmIconsUseCase(faviconService, logging.FromContext),
		LocatePathsUC:  usecase.NewLocatePathsUseCase(xdg.New()),
		FaviconService: faviconService,
		ctx:            ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.FaviconService != nil {
		a.FaviconService.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext replaces the base context, keeping its logger.
// Used to attach signal cancellation from the command layer.
func (a *App) WithContext(ctx context.Context) {
	log := logging.FromContext(a.ctx)
	a.ctx = logging.WithContext(ctx, *log)
}
