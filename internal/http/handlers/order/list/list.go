// Package list реализует HTTP-обработчик постраничного списка заказов.
//
// Параметры page и limit по умолчанию равны 1 и 10, нечисловые значения
// заменяются значениями по умолчанию, числа меньше 1 отклоняются с 400.
// name фильтрует по подстроке без учета регистра, minQuantity и maxQuantity
// задают границы количества включительно и игнорируются вне диапазона int32.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/order-api/internal/http/response"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/models"
	services "github.com/magabrotheeeer/order-api/internal/services/order"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Response тело успешного ответа.
type Response struct {
	response.Response
	Data       []*models.Order   `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// Service описывает интерфейс бизнес-логики списка заказов.
type Service interface {
	List(ctx context.Context, params models.ListParams) (*models.OrderPage, error)
}

// Handler обрабатывает запросы списка заказов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Список заказов
// @Description Возвращает страницу заказов, от новых к старым, с фильтрами по имени и количеству.
// @Tags Orders
// @Security BearerAuth
// @Produce  json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Param name query string false "Подстрока имени без учета регистра"
// @Param minQuantity query int false "Минимальное количество"
// @Param maxQuantity query int false "Максимальное количество"
// @Success 200 {object} Response "Страница заказов"
// @Failure 400 {object} response.ErrorResponse "page или limit меньше 1"
// @Failure 401 {object} response.ErrorResponse "Токен не найден"
// @Failure 403 {object} response.ErrorResponse "Невалидный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/order [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	params := ParseParams(r.URL.Query())
	if err := h.validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal(err))
		return
	}

	page, err := h.service.List(r.Context(), params)
	if errors.Is(err, services.ErrInvalidPagination) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ErrorWithDetails("validation failed", services.ErrInvalidPagination.Error()))
		return
	}
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal(err))
		return
	}

	log.Debug("orders listed", slog.Int("count", len(page.Items)), slog.Int64("total", page.Pagination.TotalCount))
	render.JSON(w, r, Response{
		Response:   response.OK("orders fetched"),
		Data:       page.Items,
		Pagination: page.Pagination,
	})
}

// ParseParams разбирает query-строку в параметры списка.
func ParseParams(q url.Values) models.ListParams {
	params := models.ListParams{
		Page:  intOr(q.Get("page"), defaultPage),
		Limit: intOr(q.Get("limit"), defaultLimit),
	}
	if name := q.Get("name"); name != "" {
		params.Filter.Name = &name
	}
	params.Filter.MinQuantity = quantityBound(q.Get("minQuantity"))
	params.Filter.MaxQuantity = quantityBound(q.Get("maxQuantity"))
	return params
}

// quantityBound разбирает границу количества. Значения вне диапазона колонки INTEGER
// игнорируются так же, как нечисловые.
func quantityBound(s string) *int {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil
	}
	n := int(v)
	return &n
}

func intOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
