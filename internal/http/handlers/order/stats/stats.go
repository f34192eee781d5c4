// Package stats реализует HTTP-обработчик агрегатов по заказам.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/order-api/internal/http/response"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/models"
)

// Response тело успешного ответа.
type Response struct {
	response.Response
	Data models.OrderStats `json:"data"`
}

// Service описывает интерфейс бизнес-логики статистики.
type Service interface {
	Stats(ctx context.Context) (models.OrderStats, error)
}

// Handler отдает агрегаты по заказам.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика заказов
// @Description Количество заказов, сумма и среднее количество (до двух знаков).
// @Tags Orders
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} Response "Статистика"
// @Failure 401 {object} response.ErrorResponse "Токен не найден"
// @Failure 403 {object} response.ErrorResponse "Невалидный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/order/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to compute stats", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal(err))
		return
	}

	render.JSON(w, r, Response{
		Response: response.OK("order stats fetched"),
		Data:     stats,
	})
}
