// Package login реализует HTTP-обработчик входа пользователя.
//
// При успешной проверке пароля возвращается JWT. Отсутствующий пользователь
// и неверный пароль дают 400 с разными сообщениями.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/order-api/internal/http/response"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	services "github.com/magabrotheeeer/order-api/internal/services/auth"
	"github.com/magabrotheeeer/order-api/internal/storage"
)

// Request структура входных данных для авторизации.
type Request struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret123"`
}

// Response тело успешного ответа.
type Response struct {
	response.Response
	Token string `json:"token"`
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис аутентификации
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Проверяет email и пароль и возвращает JWT со сроком жизни 1 час.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} Response "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, пользователь не найден или неверный пароль"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ErrorWithDetails("invalid request body", err.Error()))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		log.Info("user not found")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("user not found"))
		return
	case errors.Is(err, services.ErrWrongPassword):
		log.Info("wrong password")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("wrong password"))
		return
	case err != nil:
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Internal(err))
		return
	}

	log.Info("login success")
	render.JSON(w, r, Response{
		Response: response.OK("login successful"),
		Token:    token,
	})
}
