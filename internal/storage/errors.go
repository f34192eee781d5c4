// Package storage объявляет ошибки слоя хранения, общие для всех реализаций репозитория.
package storage

import "errors"

var (
	// ErrUserNotFound — пользователь с таким email не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — email уже занят (нарушение уникального индекса).
	ErrEmailTaken = errors.New("email already taken")
	// ErrOrderNotFound — заказ с таким ID не найден.
	ErrOrderNotFound = errors.New("order not found")
)
