// Package entities определяет доменные сущности каталога.
package entities

import (
	"errors"
	"time"
)

// ErrUserNotFound возвращается, когда пользователь не существует.
var ErrUserNotFound = errors.New("user not found")

// User представляет основную сущность домена пользователя.
// PasswordHash никогда не сериализуется наружу.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
