// Package password реализует хеширование и проверку паролей на bcrypt.
//
// GetHash создаёт соль и хеш с фиксированной стоимостью Cost.
// Verify сравнивает пароль с хешем и при любой ошибке возвращает false.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost — фиксированный work factor bcrypt.
const Cost = 10

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
// Соль и стоимость встроены в сам хэш, поэтому два вызова дают разный результат.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Verify сравнивает bcrypt‑хэш с введённым паролем.
//
// Несовпадение, повреждённый или пустой хэш дают false.
func Verify(originalHash, externalPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword))
	return err == nil
}
