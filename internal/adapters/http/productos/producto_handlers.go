// Package productos содержит HTTP обработчики каталога продуктов.
package productos

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goproductos/internal/adapters/http/dto"
	"goproductos/internal/domain/entities"
	"goproductos/internal/ports/api"
	"goproductos/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerList   = "producto handler: list"
	LogHandlerGet    = "producto handler: get"
	LogHandlerCreate = "producto handler: create"
	LogHandlerUpdate = "producto handler: update"
	LogHandlerDelete = "producto handler: delete"

	ErrorInvalidRequest       = "invalid request body"
	ErrorInvalidProductoID    = "invalid producto id"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики каталога продуктов.
type Handler struct {
	productoUseCase api.ProductoUseCase
}

// NewHandler создает новый экземпляр обработчика каталога.
func NewHandler(productoUseCase api.ProductoUseCase) *Handler {
	return &Handler{productoUseCase: productoUseCase}
}

// List возвращает все продукты каталога.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	productos, err := h.productoUseCase.List(requestCtx)
	if err != nil {
		return h.handleError(ctx, err)
	}

	message := dto.MsgListadoProductos
	if len(productos) == 0 {
		message = dto.MsgNoProductos
		productos = []*entities.Producto{}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ProductoListResponse{
		Message: message,
		Data:    productos,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get возвращает один продукт по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	id, err := parseProductoID(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidProductoID, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusNotFound, dto.MsgProductoNoEncontrado)
	}

	producto, err := h.productoUseCase.Get(requestCtx, id)
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(producto); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create сохраняет новый продукт.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.ProductoRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendValidationResponse(ctx, entities.NewValidationError())
	}

	producto, err := h.productoUseCase.Create(requestCtx, req.ToInput())
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.ProductoResponse{
		Message:  dto.MsgProductoGuardado,
		Producto: producto,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update обновляет существующий продукт.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, err := parseProductoID(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidProductoID, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusNotFound, dto.MsgProductoNoEncontrado)
	}

	var req dto.ProductoRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendValidationResponse(ctx, entities.NewValidationError())
	}

	producto, err := h.productoUseCase.Update(requestCtx, id, req.ToInput())
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ProductoResponse{
		Message:  dto.MsgProductoActualizado,
		Producto: producto,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет продукт.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	id, err := parseProductoID(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidProductoID, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusNotFound, dto.MsgProductoNoEncontrado)
	}

	if err := h.productoUseCase.Delete(requestCtx, id); err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{Message: dto.MsgProductoEliminado}); err != nil {
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
	case errors.Is(err, entities.ErrProductoNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, dto.MsgProductoNoEncontrado)
	default:
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, dto.MsgInternalError)
	}
}

func parseProductoID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing producto id: %w", err)
	}
	return id, nil
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
