package repositories

import (
	"context"

	"goproductos/internal/domain/entities"
)

// ProductoRepository определяет интерфейс хранилища продуктов.
type ProductoRepository interface {
	FindAll(ctx context.Context) ([]*entities.Producto, error)

	FindByID(ctx context.Context, id int64) (*entities.Producto, error)

	Create(ctx context.Context, input entities.ProductoInput) (*entities.Producto, error)

	Update(ctx context.Context, id int64, input entities.ProductoInput) (*entities.Producto, error)

	Delete(ctx context.Context, id int64) error
}
