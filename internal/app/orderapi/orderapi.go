package orderapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/order-api/internal/cache"
	"github.com/magabrotheeeer/order-api/internal/config"
	"github.com/magabrotheeeer/order-api/internal/lib/jwt"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/metrics"
	"github.com/magabrotheeeer/order-api/internal/migrations"
	"github.com/magabrotheeeer/order-api/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/order-api/internal/services/auth"
	orderservice "github.com/magabrotheeeer/order-api/internal/services/order"
	"github.com/magabrotheeeer/order-api/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

type cacheStore interface {
	orderservice.Cache
	Close() error
}

type eventPublisher interface {
	orderservice.EventPublisher
	Close() error
}

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  cacheStore
	events eventPublisher
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "orderapi.New"

	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("migrations applied")

	orderCache := newCache(ctx, cfg.RedisConnection, logger)
	events := newPublisher(cfg.RabbitMQ, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker, events, logger)
	orderService := orderservice.NewOrderService(db, orderCache, events, cfg.CacheTTL, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, Deps{
		Logger:   logger,
		Auth:     authService,
		Orders:   orderService,
		DB:       db,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  orderCache,
		events: events,
	}, nil
}

// newCache подключает redis. Без адреса или при недоступном сервере заказы не кешируются.
func newCache(ctx context.Context, cfg config.RedisConnection, logger *slog.Logger) cacheStore {
	if cfg.AddressRedis == "" {
		logger.Info("redis address is empty, cache disabled")
		return cache.NopCache{}
	}
	c, err := cache.InitServer(ctx, cfg)
	if err != nil {
		logger.Warn("redis unavailable, cache disabled", sl.Err(err))
		return cache.NopCache{}
	}
	logger.Info("connected to redis", slog.String("address", cfg.AddressRedis))
	return c
}

// newPublisher подключает RabbitMQ. События не критичны: при ошибке они просто не публикуются.
func newPublisher(cfg config.RabbitMQ, logger *slog.Logger) eventPublisher {
	if cfg.URL == "" {
		logger.Info("rabbitmq url is empty, events disabled")
		return rabbitmq.NopPublisher{}
	}
	p, err := rabbitmq.Dial(cfg)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events disabled", sl.Err(err))
		return rabbitmq.NopPublisher{}
	}
	logger.Info("connected to rabbitmq", slog.String("exchange", cfg.Exchange))
	return p
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
	}
	a.close()
	return err
}

func (a *App) close() {
	if err := a.events.Close(); err != nil {
		a.logger.Warn("failed to close rabbitmq", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close storage", sl.Err(err))
	}
}
