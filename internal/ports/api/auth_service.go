// Package api определяет входные порты (use case интерфейсы) приложения.
package api

import (
	"context"

	"goproductos/internal/domain/entities"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password, passwordConfirmation string) (*entities.User, string, error)

	Login(ctx context.Context, email, password string) (*entities.User, string, error)

	Logout(ctx context.Context, token string) error

	Authorize(ctx context.Context, token string) (*entities.User, error)
}
