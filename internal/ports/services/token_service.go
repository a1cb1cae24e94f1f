package services

import "context"

// TokenService определяет интерфейс генерации непрозрачных bearer-токенов.
type TokenService interface {
	GenerateToken(ctx context.Context) (string, error)
}
