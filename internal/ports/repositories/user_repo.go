// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"goproductos/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
