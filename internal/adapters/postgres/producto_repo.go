package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goproductos/internal/domain/entities"
	"goproductos/internal/ports/repositories"
	"goproductos/pkg/logger"
)

// ProductoRepository реализует интерфейс repositories.ProductoRepository для работы с Postgres.
type ProductoRepository struct {
	pool PgxPoolInterface
}

// NewProductoRepository создает новый экземпляр репозитория продуктов.
func NewProductoRepository(pool PgxPoolInterface) repositories.ProductoRepository {
	return &ProductoRepository{pool: pool}
}

// FindAll возвращает все продукты в порядке их создания.
func (r *ProductoRepository) FindAll(ctx context.Context) ([]*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("repository", "producto"), zap.String("method", "FindAll"))

	query := `
        SELECT id, nombre, precio, descripcion, created_at, updated_at
        FROM productos
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error querying productos", zap.Error(err))
		return nil, fmt.Errorf("error querying productos: %w", err)
	}
	defer rows.Close()

	var productos []*entities.Producto

	for rows.Next() {
		var producto entities.Producto

		err := rows.Scan(
			&producto.ID,
			&producto.Nombre,
			&producto.Precio,
			&producto.Descripcion,
			&producto.CreatedAt,
			&producto.UpdatedAt,
		)

		if err != nil {
			log.Error(ctx, "error scanning producto row", zap.Error(err))
			return nil, fmt.Errorf("error scanning producto row: %w", err)
		}

		productos = append(productos, &producto)
	}

	if err = rows.Err(); err != nil {
		log.Error(ctx, "error iterating producto rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating producto rows: %w", err)
	}

	return productos, nil
}

// FindByID находит продукт по ID.
func (r *ProductoRepository) FindByID(ctx context.Context, id int64) (*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("repository", "producto"), zap.String("method", "FindByID"))

	query := `
        SELECT id, nombre, precio, descripcion, created_at, updated_at
        FROM productos
        WHERE id = $1
    `

	var producto entities.Producto
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&producto.ID,
		&producto.Nombre,
		&producto.Precio,
		&producto.Descripcion,
		&producto.CreatedAt,
		&producto.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "producto not found", zap.Int64("id", id))
			return nil, entities.ErrProductoNotFound
		}
		log.Error(ctx, "error finding producto by id", zap.Error(err))
		return nil, fmt.Errorf("error querying producto by id: %w", err)
	}

	return &producto, nil
}

// Create сохраняет новый продукт.
func (r *ProductoRepository) Create(ctx context.Context, input entities.ProductoInput) (*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("repository", "producto"), zap.String("method", "Create"))

	query := `
        INSERT INTO productos (nombre, precio, descripcion)
        VALUES ($1, $2, $3)
        RETURNING id, nombre, precio, descripcion, created_at, updated_at
    `

	var producto entities.Producto
	err := r.pool.QueryRow(ctx, query,
		input.Nombre,
		input.Precio,
		input.Descripcion,
	).Scan(
		&producto.ID,
		&producto.Nombre,
		&producto.Precio,
		&producto.Descripcion,
		&producto.CreatedAt,
		&producto.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating producto", zap.Error(err))
		return nil, fmt.Errorf("error creating producto: %w", err)
	}

	return &producto, nil
}

// Update обновляет все изменяемые поля продукта.
func (r *ProductoRepository) Update(ctx context.Context, id int64, input entities.ProductoInput) (*entities.Producto, error) {
	log := logger.Log(ctx).With(zap.String("repository", "producto"), zap.String("method", "Update"))

	query := `
        UPDATE productos
        SET nombre = $2, precio = $3, descripcion = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING id, nombre, precio, descripcion, created_at, updated_at
    `

	var producto entities.Producto
	err := r.pool.QueryRow(ctx, query,
		id,
		input.Nombre,
		input.Precio,
		input.Descripcion,
	).Scan(
		&producto.ID,
		&producto.Nombre,
		&producto.Precio,
		&producto.Descripcion,
		&producto.CreatedAt,
		&producto.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "producto not found for update", zap.Int64("id", id))
			return nil, entities.ErrProductoNotFound
		}
		log.Error(ctx, "error updating producto", zap.Error(err))
		return nil, fmt.Errorf("error updating producto: %w", err)
	}

	return &producto, nil
}

// Delete удаляет продукт по ID.
func (r *ProductoRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "producto"), zap.String("method", "Delete"))

	query := `
        DELETE FROM productos
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting producto", zap.Error(err))
		return fmt.Errorf("error deleting producto: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "producto not found for deletion", zap.Int64("id", id))
		return entities.ErrProductoNotFound
	}

	return nil
}
