// Package jwt реализует выпуск и проверку JWT токенов (HS256) с идентификатором пользователя.
//
// Maker определяет интерфейс для создания и разбора токенов.
// MakerImpl — реализация с общим секретным ключом и временем жизни токена.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена.
var (
	// ErrTokenMalformed — токен не удаётся разобрать в ожидаемую структуру.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenInvalidSignature — токен изменён или подписан другим ключом/алгоритмом.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	// ErrTokenExpired — подпись верна, но срок действия истёк.
	ErrTokenExpired = errors.New("token has expired")
)

// DefaultTTL — время жизни токена по умолчанию.
const DefaultTTL = time.Hour

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	GenerateToken(userID int64) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
	now       func() time.Time
}

// NewJWTMaker создаёт новый MakerImpl. Нулевой ttl заменяется на DefaultTTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}
