// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/order-api/internal/lib/jwt"
	"github.com/magabrotheeeer/order-api/internal/lib/password"
	"github.com/magabrotheeeer/order-api/internal/lib/sl"
	"github.com/magabrotheeeer/order-api/internal/models"
	"github.com/magabrotheeeer/order-api/internal/rabbitmq"
)

// ErrWrongPassword возвращается, когда пароль не совпадает с сохраненным хэшем.
var ErrWrongPassword = errors.New("wrong password")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя. Занятый email дает storage.ErrEmailTaken.
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или storage.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// EventPublisher публикует доменные события.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	events   EventPublisher
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, events EventPublisher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		events:   events,
		log:      log,
	}
}

// Register хэширует пароль и создает пользователя.
// Уникальность email обеспечивает индекс в базе, без предварительного чтения.
func (s *AuthService) Register(ctx context.Context, email, rawPassword string) (*models.User, error) {
	const op = "services.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, email, hashed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.Int64("user_id", user.ID))
	if err := s.events.Publish(ctx, rabbitmq.EventUserRegistered, user); err != nil {
		s.log.Warn("failed to publish event",
			slog.String("event", rabbitmq.EventUserRegistered), sl.Err(err))
	}

	return user, nil
}

// Login проверяет пароль пользователя и выдает JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !password.Verify(user.PasswordHash, rawPassword) {
		return "", fmt.Errorf("%s: %w", op, ErrWrongPassword)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет подпись и срок действия JWT и возвращает его claims.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}
