package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/shop-inventory/internal/config"
	"github.com/rogerio-castellano/shop-inventory/internal/db"
	"github.com/rogerio-castellano/shop-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/shop-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/shop-inventory/internal/http/router"
	"github.com/rogerio-castellano/shop-inventory/internal/logging"
	"github.com/rogerio-castellano/shop-inventory/internal/redissvc"
	"github.com/rogerio-castellano/shop-inventory/internal/repo"
)

// @title Shop API
// @version 1.0
// @description REST API behind the shop product list: list, create, read, update and delete products.
// @host localhost:8081
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}
	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, cleanup, err := buildProductRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not initialize product storage")
	}
	defer cleanup()
	handlers.SetProductRepo(products)

	limiter := rl.New(cfg.Server.RateLimit, cfg.Server.RateBurst)
	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			Logger:         logger,
			Limiter:        limiter,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		limiter.StartVisitorCleanupLoop(gctx, rl.IdleTimeout/5)
		return nil
	})
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("Server exited")
}

// buildProductRepository picks Postgres when DATABASE_URL is set and memory
// otherwise, then layers the Redis list cache on top when REDIS_ADDR is set.
func buildProductRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repo.ProductRepository, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var products repo.ProductRepository
	if cfg.DB.URL == "" {
		logger.Warn().Msg("DATABASE_URL not set, products are kept in memory")
		products = repo.NewInMemoryProductRepository()
	} else {
		database, err := db.Connect(ctx, cfg.DB.URL)
		if err != nil {
			return nil, func() {}, err
		}
		closers = append(closers, func() { _ = database.Close() })

		if err := db.Migrate(database.DB); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		products = repo.NewPostgresProductRepository(database)
	}

	if cfg.Redis.Addr != "" {
		rs, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, func() { _ = rs.Close() })
		products = repo.NewCachedProductRepository(products, rs.Rdb(), cfg.Redis.CacheTTL, logger)
		logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.CacheTTL).Msg("Product list cache enabled")
	}

	return products, cleanup, nil
}
