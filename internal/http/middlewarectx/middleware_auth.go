// Package middlewarectx содержит HTTP middleware сервиса.
//
// JWTMiddleware проверяет bearer-токен в заголовке Authorization и в случае
// успеха кладет в контекст запроса AuthContext с идентификатором пользователя.
// Отсутствующий токен дает 401, непрошедший проверку 403.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/order-api/internal/http/response"
	"github.com/magabrotheeeer/order-api/internal/lib/jwt"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/metrics"
)

// Тексты ответов при отказе в доступе.
const (
	MessageTokenNotFound = "access denied, token not found"
	MessageInvalidToken  = "invalid token"
)

// AuthContext данные проверенного токена. После создания не изменяется.
type AuthContext struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type authKey struct{}

// WithAuth возвращает производный контекст с ac.
func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, authKey{}, ac)
}

// AuthFromContext достает AuthContext, положенный JWTMiddleware.
func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(authKey{}).(AuthContext)
	return ac, ok
}

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
func JWTMiddleware(authService Service, log *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := bearerToken(r.Header.Get("Authorization"))
			if tokenStr == "" {
				log.Info("token not found")
				m.AuthRejected.WithLabelValues("missing").Inc()
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(MessageTokenNotFound))
				return
			}

			claims, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Info("token rejected", sl.Err(err))
				m.AuthRejected.WithLabelValues(rejectReason(err)).Inc()
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.ErrorWithDetails(MessageInvalidToken, err.Error()))
				return
			}

			ac := AuthContext{UserID: claims.UserID}
			if claims.IssuedAt != nil {
				ac.IssuedAt = claims.IssuedAt.Time
			}
			if claims.ExpiresAt != nil {
				ac.ExpiresAt = claims.ExpiresAt.Time
			}
			next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), ac)))
		})
	}
}

// bearerToken возвращает второе поле заголовка, разделенного одиночными пробелами.
// "Bearer  x" дает пустой токен, "Bearer a b" дает "a".
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "other"
	}
}
