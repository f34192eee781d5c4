// Package create реализует HTTP-обработчик создания заказа.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/order-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/order-api/internal/http/response"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/models"
)

// Response тело успешного ответа. Созданный заказ лежит под ключом "user".
type Response struct {
	response.Response
	Order *models.Order `json:"user"`
}

// Service описывает интерфейс бизнес-логики создания заказа.
type Service interface {
	Create(ctx context.Context, req models.DummyOrder) (*models.Order, error)
}

// Handler обрабатывает запросы на создание заказа.
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
// @Summary Создание заказа
// @Description Создает заказ с названием и количеством.
// @Tags Orders
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyOrder true "Данные заказа"
// @Success 201 {object} Response "Заказ создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Токен не найден"
// @Failure 403 {object} response.ErrorResponse "Невалидный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/order [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	if ac, ok := middlewarectx.AuthFromContext(r.Context()); ok {
		log = log.With(slog.Int64("user_id", ac.UserID))
	}

	var req models.DummyOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ErrorWithDetails("invalid request body", err.Error()))
		return
	}

	order, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create order", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal(err))
		return
	}

	log.Info("order created", slog.Int64("id", order.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: response.OK("order created"),
		Order:    order,
	})
}
