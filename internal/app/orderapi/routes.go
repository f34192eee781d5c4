// Package orderapi собирает зависимости сервиса заказов и регистрирует маршруты.
package orderapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/order-api/docs" // swagger spec
	"github.com/magabrotheeeer/order-api/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/order-api/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/order-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/order-api/internal/http/handlers/order/create"
	"github.com/magabrotheeeer/order-api/internal/http/handlers/order/list"
	"github.com/magabrotheeeer/order-api/internal/http/handlers/order/read"
	"github.com/magabrotheeeer/order-api/internal/http/handlers/order/stats"
	"github.com/magabrotheeeer/order-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/order-api/internal/metrics"
	authservice "github.com/magabrotheeeer/order-api/internal/services/auth"
	orderservice "github.com/magabrotheeeer/order-api/internal/services/order"
)

// Deps зависимости HTTP-слоя.
type Deps struct {
	Logger   *slog.Logger
	Auth     *authservice.AuthService
	Orders   *orderservice.OrderService
	DB       health.Pinger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware(d.Metrics),
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", register.New(d.Logger, d.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(d.Logger, d.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(d.Auth, d.Logger, d.Metrics))
			r.Post("/order", create.New(d.Logger, d.Orders).ServeHTTP)
			r.Get("/order", list.New(d.Logger, d.Orders).ServeHTTP)
			r.Get("/order/stats", stats.New(d.Logger, d.Orders).ServeHTTP)
			r.Get("/order/{id}", read.New(d.Logger, d.Orders).ServeHTTP)
		})
	})

	r.Get("/health", health.New(d.Logger, d.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
