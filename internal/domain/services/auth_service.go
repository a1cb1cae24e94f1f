// Package services определяет доменные значения и ошибки аутентификации.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrInvalidAccessToken    = errors.New("invalid access token")
	ErrRevokedAccessToken    = errors.New("access token has been revoked")
	ErrTokenGenerationFailed = errors.New("failed to generate access token")
)

// AccessToken представляет выданный bearer-токен.
// Токен действителен тогда и только тогда, когда существует запись и она не отозвана.
type AccessToken struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	IsRevoked bool
}
