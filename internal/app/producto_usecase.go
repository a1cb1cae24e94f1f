package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goproductos/internal/domain/entities"
	"goproductos/internal/ports/api"
	"goproductos/internal/ports/repositories"
	"goproductos/pkg/logger"
)

const (
	methodList   = "List"
	methodGet    = "Get"
	methodCreate = "Create"
	methodUpdate = "Update"
	methodDelete = "Delete"

	msgListingProductos    = "listing productos"
	msgProductosListed     = "productos listed"
	msgFetchingProducto    = "fetching producto"
	msgProductoNotFound    = "producto not found"
	msgCreatingProducto    = "creating producto"
	msgProductoCreated     = "producto created"
	msgProductoInvalid     = "producto rejected by validation"
	msgUpdatingProducto    = "updating producto"
	msgProductoUpdated     = "producto updated"
	msgDeletingProducto    = "deleting producto"
	msgProductoDeleted     = "producto deleted"
	msgErrListProductos    = "failed to list productos"
	msgErrFindProducto     = "failed to find producto"
	msgErrCreateProducto   = "failed to create producto"
	msgErrUpdateProducto   = "failed to update producto"
	msgErrDeleteProducto   = "failed to delete producto"

	errCtxListingProductos = "listing productos"
	errCtxFindingProducto  = "finding producto"
	errCtxCreatingProducto = "creating producto"
	errCtxUpdatingProducto = "updating producto"
	errCtxDeletingProducto = "deleting producto"
)

// Сообщения валидации продукта.
const (
	msgNombreRequired     = "El nombre del producto es obligatorio."
	msgNombreTooLong      = "El nombre no debe superar los 255 caracteres."
	msgPrecioRequired     = "El precio del producto es obligatorio."
	msgPrecioNegative     = "El precio no puede ser negativo."
	msgDescripcionTooLong = "La descripción no debe exceder los 1000 caracteres."
)

// ProductoUseCaseImpl реализует интерфейс ProductoUseCase.
type ProductoUseCaseImpl struct {
	productoRepo repositories.ProductoRepository
}

// NewProductoUseCase создает новый экземпляр сервиса каталога.
func NewProductoUseCase(productoRepo repositories.ProductoRepository) api.ProductoUseCase {
	return &ProductoUseCaseImpl{productoRepo: productoRepo}
}

// List возвращает все продукты каталога.
func (p *ProductoUseCaseImpl) List(ctx context.Context) ([]*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("method", methodList))
	log.Debug(ctx, msgListingProductos)

	productos, err := p.productoRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, msgErrListProductos, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingProductos, err)
	}

	log.Debug(ctx, msgProductosListed, zap.Int("count", len(productos)))
	return productos, nil
}

// Get возвращает продукт по идентификатору.
func (p *ProductoUseCaseImpl) Get(ctx context.Context, id int64) (*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGet), zap.Int64("productoID", id))
	log.Debug(ctx, msgFetchingProducto)

	producto, err := p.productoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrProductoNotFound) {
			log.Debug(ctx, msgProductoNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxFindingProducto, err)
		}
		log.Error(ctx, msgErrFindProducto, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingProducto, err)
	}

	return producto, nil
}

// Create валидирует входные данные и сохраняет новый продукт.
func (p *ProductoUseCaseImpl) Create(ctx context.Context, input entities.ProductoInput) (*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreate), zap.String("nombre", input.Nombre))
	log.Debug(ctx, msgCreatingProducto)

	if validation := validateProductoInput(input); validation != nil {
		log.Debug(ctx, msgProductoInvalid, zap.Int("violations", len(validation.Violations)))
		return nil, validation
	}

	producto, err := p.productoRepo.Create(ctx, input)
	if err != nil {
		log.Error(ctx, msgErrCreateProducto, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingProducto, err)
	}

	log.Info(ctx, msgProductoCreated, zap.Int64("productoID", producto.ID))
	return producto, nil
}

// Update обновляет существующий продукт.
// Отсутствие продукта имеет приоритет над ошибками валидации.
func (p *ProductoUseCaseImpl) Update(ctx context.Context, id int64, input entities.ProductoInput) (*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdate), zap.Int64("productoID", id))
	log.Debug(ctx, msgUpdatingProducto)

	if _, err := p.productoRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, entities.ErrProductoNotFound) {
			log.Debug(ctx, msgProductoNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxUpdatingProducto, err)
		}
		log.Error(ctx, msgErrFindProducto, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProducto, err)
	}

	if validation := validateProductoInput(input); validation != nil {
		log.Debug(ctx, msgProductoInvalid, zap.Int("violations", len(validation.Violations)))
		return nil, validation
	}

	producto, err := p.productoRepo.Update(ctx, id, input)
	if err != nil {
		log.Error(ctx, msgErrUpdateProducto, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProducto, err)
	}

	log.Info(ctx, msgProductoUpdated)
	return producto, nil
}

// Delete удаляет продукт по идентификатору.
func (p *ProductoUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDelete), zap.Int64("productoID", id))
	log.Debug(ctx, msgDeletingProducto)

	if err := p.productoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrProductoNotFound) {
			log.Debug(ctx, msgProductoNotFound)
			return fmt.Errorf("%s: %w", errCtxDeletingProducto, err)
		}
		log.Error(ctx, msgErrDeleteProducto, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingProducto, err)
	}

	log.Info(ctx, msgProductoDeleted)
	return nil
}

// validateProductoInput собирает все нарушения в одну ошибку валидации.
func validateProductoInput(input entities.ProductoInput) *entities.ValidationError {
	validation := entities.NewValidationError()

	switch {
	case input.Nombre == "":
		validation.Add("nombre", msgNombreRequired)
	case len([]rune(input.Nombre)) > entities.MaxNombreLength:
		validation.Add("nombre", msgNombreTooLong)
	}

	switch {
	case input.Precio == nil:
		validation.Add("precio", msgPrecioRequired)
	case *input.Precio < 0:
		validation.Add("precio", msgPrecioNegative)
	}

	if input.Descripcion != nil && len([]rune(*input.Descripcion)) > entities.MaxDescripcionLength {
		validation.Add("descripcion", msgDescripcionTooLong)
	}

	if validation.HasViolations() {
		return validation
	}
	return nil
}
