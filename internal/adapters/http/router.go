// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"goproductos/internal/adapters/http/auth"
	"goproductos/internal/adapters/http/dto"
	"goproductos/internal/adapters/http/middleware"
	"goproductos/internal/adapters/http/productos"
	"goproductos/internal/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, productoUseCase api.ProductoUseCase) {
	authHandler := auth.NewHandler(authUseCase)
	productoHandler := productos.NewHandler(productoUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Проверка работоспособности.
	app.Get("/", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{
			Message: dto.MsgAPIFunctioning,
		})
	})

	// Публичные маршруты.
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	authRequired := middleware.NewAuthMiddleware(authUseCase)

	app.Post("/logout", authHandler.Logout, authRequired)
	app.Get("/user", authHandler.GetUser, authRequired)

	productosRoutes := app.Group("/productos")
	productosRoutes.Use(authRequired)
	productosRoutes.Get("/", productoHandler.List)
	productosRoutes.Post("/", productoHandler.Create)
	productosRoutes.Get("/:id", productoHandler.Get)
	productosRoutes.Put("/:id", productoHandler.Update)
	productosRoutes.Delete("/:id", productoHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
