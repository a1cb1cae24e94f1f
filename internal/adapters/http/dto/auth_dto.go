// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"goproductos/internal/domain/entities"
)

// Пользовательские сообщения API.
const (
	MsgAPIFunctioning     = "API está funcionando"
	MsgSessionClosed      = "Sesión cerrada correctamente."
	MsgUnauthorized       = "No autorizado."
	MsgInvalidCredentials = "Credenciales incorrectas."
	MsgValidationFailed   = "Los datos proporcionados no son válidos."
	MsgInternalError      = "Error interno del servidor."
)

// RegisterRequest содержит данные для регистрации пользователя.
// Принимаются только перечисленные поля, остальное тело запроса игнорируется.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse содержит данные пользователя и выданный токен.
type AuthResponse struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// MessageResponse содержит единственное сообщение для клиента.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse содержит сообщения валидации по полям.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
