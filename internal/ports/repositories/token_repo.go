package repositories

import (
	"context"

	"goproductos/internal/domain/services"
)

// TokenRepository определяет интерфейс реестра выданных токенов.
type TokenRepository interface {
	Store(ctx context.Context, token *services.AccessToken) error

	FindByToken(ctx context.Context, token string) (*services.AccessToken, error)

	Revoke(ctx context.Context, token string) error
}
