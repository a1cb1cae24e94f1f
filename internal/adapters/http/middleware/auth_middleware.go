// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goproductos/internal/adapters/http/dto"
	"goproductos/internal/ports/api"
	"goproductos/pkg/logger"
)

// Ключи Locals для данных авторизованного запроса.
const (
	UserLocalsKey  = "authUser"
	TokenLocalsKey = "accessToken"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenRejected      = "token rejected"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО, пропускающее дальше только
// запросы с действительным bearer-токеном.
func NewAuthMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return sendUnauthorized(ctx)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return sendUnauthorized(ctx)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		user, err := authUseCase.Authorize(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorTokenRejected, zap.Error(err))
			return sendUnauthorized(ctx)
		}

		ctx.Locals(UserLocalsKey, user)
		ctx.Locals(TokenLocalsKey, token)

		return ctx.Next()
	}
}

func sendUnauthorized(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
		Message: dto.MsgUnauthorized,
	})
}
