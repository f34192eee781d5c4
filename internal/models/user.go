// Package models содержит доменные структуры сервиса: пользователя,
// заказ и вспомогательные типы для фильтрации и пагинации списка заказов.
package models

import "time"

// User представляет зарегистрированного пользователя.
// Хэш пароля никогда не сериализуется в JSON.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
