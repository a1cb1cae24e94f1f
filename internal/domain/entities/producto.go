package entities

import (
	"errors"
	"time"
)

// Ограничения полей продукта.
const (
	MaxNombreLength      = 255
	MaxDescripcionLength = 1000
)

// ErrProductoNotFound возвращается, когда продукт с указанным ID не существует.
var ErrProductoNotFound = errors.New("producto not found")

// Producto представляет запись каталога продуктов.
type Producto struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Precio      float64   `json:"precio"`
	Descripcion *string   `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductoInput содержит поля продукта, принимаемые от клиента.
// Precio - указатель, чтобы отличать отсутствующее значение от нуля.
type ProductoInput struct {
	Nombre      string
	Precio      *float64
	Descripcion *string
}
