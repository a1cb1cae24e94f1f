// Package auth содержит HTTP обработчики аутентификации.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goproductos/internal/adapters/http/dto"
	"goproductos/internal/adapters/http/middleware"
	"goproductos/internal/domain/entities"
	"goproductos/internal/domain/services"
	"goproductos/internal/ports/api"
	"goproductos/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
	LogHandlerLogout   = "auth handler: logout"
	LogHandlerGetUser  = "auth handler: get user"

	ErrorInvalidRequest       = "invalid request body"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendValidationResponse(ctx, entities.NewValidationError())
	}

	user, token, err := h.authUseCase.Register(requestCtx, req.Name, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.AuthResponse{User: user, Token: token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusUnauthorized, dto.MsgInvalidCredentials)
	}

	user, token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.AuthResponse{User: user, Token: token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout отзывает токен, которым был авторизован текущий запрос.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	token, ok := ctx.Locals(middleware.TokenLocalsKey).(string)
	if !ok || token == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, dto.MsgUnauthorized)
	}

	if err := h.authUseCase.Logout(requestCtx, token); err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{Message: dto.MsgSessionClosed}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetUser возвращает профиль авторизованного пользователя.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetUser)

	user, ok := ctx.Locals(middleware.UserLocalsKey).(*entities.User)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, dto.MsgUnauthorized)
	}

	if err := ctx.Status(http.StatusOK).JSON(user); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// handleError переводит доменные ошибки в HTTP ответы.
func (h *Handler) handleError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	var validationErr *entities.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return sendValidationResponse(ctx, validationErr)
	case errors.Is(err, services.ErrInvalidCredentials):
		return sendErrorResponse(ctx, http.StatusUnauthorized, dto.MsgInvalidCredentials)
	case errors.Is(err, services.ErrInvalidAccessToken), errors.Is(err, services.ErrRevokedAccessToken):
		return sendErrorResponse(ctx, http.StatusUnauthorized, dto.MsgUnauthorized)
	default:
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, dto.MsgInternalError)
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendValidationResponse(ctx fiber.Ctx, validationErr *entities.ValidationError) error {
	if err := ctx.Status(http.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Message: dto.MsgValidationFailed,
		Errors:  validationErr.Messages(),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
