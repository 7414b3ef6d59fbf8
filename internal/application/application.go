package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"boatmatch/internal/config"
	"boatmatch/internal/domain/service/comparison"
	"boatmatch/internal/domain/service/similarity"
	"boatmatch/internal/infrastructure/persistence"
	"boatmatch/internal/infrastructure/rediscache"
	"boatmatch/internal/server"
	"boatmatch/pkg/application/connectors"
	"boatmatch/pkg/application/modules"
	"boatmatch/pkg/contextx"
	"boatmatch/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run wires the service from cfg and blocks until ctx is cancelled or one of
// the servers fails.
func Run(ctx context.Context, cfg config.Config) error {
	logger(ctx).Info("application starting", slog.Any("config", cfg))

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnectTimeout:  cfg.Postgres.ConnectTimeout,
	}
	defer pg.Close(ctx)

	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer rd.Close(ctx)

	catalog, err := newCatalog(ctx, cfg.Catalog, pg)
	if err != nil {
		return fmt.Errorf("newCatalog: %w", err)
	}

	cache, err := newCache(ctx, cfg.Cache, rd)
	if err != nil {
		return fmt.Errorf("newCache: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := comparison.NewService(catalog, cache, comparison.NewMetrics(registry)).
		WithDefaultPreset(cfg.Scoring.Preset).
		WithMatchPolicy(similarity.MatchPolicy(cfg.Scoring.MatchPolicy)).
		WithConcurrency(cfg.Scoring.Concurrency).
		WithDefaultLimit(cfg.Scoring.DefaultLimit)

	router := server.NewRouter(
		logger(ctx),
		cfg.HTTP.LogFieldMaxLength,
		server.NewServer(server.NewBoatServer(catalog, svc)),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready: func(ctx context.Context) error {
			if _, err := catalog.List(ctx); err != nil {
				return fmt.Errorf("catalog.List: %w", err)
			}

			return nil
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopping")

	return nil
}

func newCatalog(ctx context.Context, cfg config.Catalog, pg *connectors.Postgres) (comparison.Catalog, error) {
	static, err := newStaticCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("newStaticCatalog: %w", err)
	}

	if cfg.Source == config.CatalogSourceStatic {
		logger(ctx).Info("static catalog loaded", slog.Int(logx.FieldCandidates, static.Len()))

		return static, nil
	}

	db, err := pg.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("pg.Client: %w", err)
	}

	repo := persistence.NewBoatRepository(db)

	if cfg.Seed {
		if err = seedCatalog(ctx, repo, static); err != nil {
			return nil, fmt.Errorf("seedCatalog: %w", err)
		}
	}

	return repo, nil
}

func newStaticCatalog(cfg config.Catalog) (*persistence.StaticCatalog, error) {
	if cfg.File != "" {
		return persistence.NewStaticCatalogFromFile(cfg.File) //nolint:wrapcheck
	}

	return persistence.NewStaticCatalog() //nolint:wrapcheck
}

// seedCatalog copies the static catalog into an empty postgres catalog.
func seedCatalog(ctx context.Context, repo *persistence.BoatRepository, static *persistence.StaticCatalog) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("repo.Count: %w", err)
	}

	if count > 0 {
		return nil
	}

	boats, err := static.List(ctx)
	if err != nil {
		return fmt.Errorf("static.List: %w", err)
	}

	if err = repo.CreateBatch(ctx, boats); err != nil {
		return fmt.Errorf("repo.CreateBatch: %w", err)
	}

	logger(ctx).Info("postgres catalog seeded", slog.Int(logx.FieldCandidates, len(boats)))

	return nil
}

func newCache(ctx context.Context, cfg config.Cache, rd *connectors.Redis) (comparison.ResultCache, error) {
	switch cfg.Backend {
	case config.CacheBackendNone:
		return comparison.NopCache{}, nil
	case config.CacheBackendRedis:
		client, err := rd.Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("rd.Client: %w", err)
		}

		return rediscache.New(client, cfg.TTL).WithKeyPrefix(cfg.KeyPrefix), nil
	default:
		return comparison.NewMemoryCache(cfg.TTL, cfg.CleanupInterval), nil
	}
}
