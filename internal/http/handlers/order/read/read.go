// Package read реализует HTTP-обработчик для получения заказа по ID.
//
// Нечисловой ID и отсутствующий заказ одинаково дают 404.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/order-api/internal/http/response"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/models"
	"github.com/magabrotheeeer/order-api/internal/storage"
)

const messageNotFound = "order not found"

// Response тело успешного ответа.
type Response struct {
	response.Response
	Data *models.Order `json:"data"`
}

// Handler обрабатывает запросы на получение заказа по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения заказа по ID
}

// Service описывает интерфейс бизнес-логики чтения заказа.
type Service interface {
	Read(ctx context.Context, id int64) (*models.Order, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заказ по ID
// @Tags Orders
// @Security BearerAuth
// @Produce  json
// @Param id path int true "ID заказа"
// @Success 200 {object} Response "Заказ"
// @Failure 401 {object} response.ErrorResponse "Токен не найден"
// @Failure 403 {object} response.ErrorResponse "Невалидный токен"
// @Failure 404 {object} response.ErrorResponse "Заказ не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/order/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Info("id is not a number", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(messageNotFound))
		return
	}

	order, err := h.service.Read(r.Context(), id)
	if errors.Is(err, storage.ErrOrderNotFound) {
		log.Info("order not found", slog.Int64("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(messageNotFound))
		return
	}
	if err != nil {
		log.Error("failed to read order", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal(err))
		return
	}

	render.JSON(w, r, Response{
		Response: response.OK("order fetched"),
		Data:     order,
	})
}
