package api

import (
	"context"

	"goproductos/internal/domain/entities"
)

// ProductoUseCase определяет основной порт для операций с каталогом продуктов.
// Каждая операция вызывается только после успешного AuthUseCase.Authorize.
type ProductoUseCase interface {
	List(ctx context.Context) ([]*entities.Producto, error)

	Get(ctx context.Context, id int64) (*entities.Producto, error)

	Create(ctx context.Context, input entities.ProductoInput) (*entities.Producto, error)

	Update(ctx context.Context, id int64, input entities.ProductoInput) (*entities.Producto, error)

	Delete(ctx context.Context, id int64) error
}
