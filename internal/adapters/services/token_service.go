package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	domain "goproductos/internal/domain/services"
	svc "goproductos/internal/ports/services"
)

const errMsgFailedToReadRandom = "failed to read random bytes"

// DefaultTokenBytes - длина токена в байтах до hex-кодирования.
const DefaultTokenBytes = 32

// ServiceOpaqueToken реализует интерфейс TokenService.
// Токен - непрозрачная случайная строка, его действительность определяется
// только наличием записи в реестре.
type ServiceOpaqueToken struct {
	tokenBytes int
}

// NewOpaqueToken создает новый генератор непрозрачных токенов.
func NewOpaqueToken(tokenBytes int) svc.TokenService {
	if tokenBytes <= 0 {
		tokenBytes = DefaultTokenBytes
	}
	return &ServiceOpaqueToken{tokenBytes: tokenBytes}
}

// GenerateToken генерирует криптографически случайный токен.
func (s *ServiceOpaqueToken) GenerateToken(_ context.Context) (string, error) {
	buf := make([]byte, s.tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToReadRandom, domain.ErrTokenGenerationFailed)
	}
	return hex.EncodeToString(buf), nil
}
