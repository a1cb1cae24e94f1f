package dto

import (
	"goproductos/internal/domain/entities"
)

// Сообщения каталога продуктов.
const (
	MsgProductoGuardado     = "Producto guardado correctamente"
	MsgProductoActualizado  = "Producto actualizado correctamente"
	MsgProductoEliminado    = "Producto eliminado"
	MsgProductoNoEncontrado = "Producto no encontrado"
	MsgNoProductos          = "No hay productos registrados."
	MsgListadoProductos     = "Listado de productos."
)

// ProductoRequest содержит поля продукта, принимаемые от клиента.
// Precio - указатель, чтобы отличать отсутствующее поле от нулевой цены.
type ProductoRequest struct {
	Nombre      string   `json:"nombre"`
	Precio      *float64 `json:"precio"`
	Descripcion *string  `json:"descripcion"`
}

// ToInput преобразует запрос во входные данные домена.
func (r *ProductoRequest) ToInput() entities.ProductoInput {
	return entities.ProductoInput{
		Nombre:      r.Nombre,
		Precio:      r.Precio,
		Descripcion: r.Descripcion,
	}
}

// ProductoResponse содержит сообщение и сохраненный продукт.
type ProductoResponse struct {
	Message  string             `json:"message"`
	Producto *entities.Producto `json:"producto"`
}

// ProductoListResponse содержит сообщение и список продуктов.
type ProductoListResponse struct {
	Message string               `json:"message"`
	Data    []*entities.Producto `json:"data"`
}
