package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookRequest body para POST /api/libros.
type CreateBookRequest struct {
	ISBN        string          `json:"isbn" validate:"required"`
	Titulo      string          `json:"titulo" validate:"required,min=1,max=300"`
	Autor       string          `json:"autor"`
	CategoriaID string          `json:"categoria_id"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	StockActual int             `json:"stock_actual" validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

// UpdateBookRequest body para PUT /api/libros/:id. No toca stock_actual:
// el stock solo se mueve por ventas, cancelaciones y ajustes.
type UpdateBookRequest struct {
	Titulo      string           `json:"titulo,omitempty"`
	Autor       string           `json:"autor,omitempty"`
	CategoriaID string           `json:"categoria_id,omitempty"`
	PrecioVenta *decimal.Decimal `json:"precio_venta,omitempty"`
	StockMinimo *int             `json:"stock_minimo,omitempty"`
}

// BookResponse libro en respuestas.
type BookResponse struct {
	ID          string          `json:"id"`
	ISBN        string          `json:"isbn"`
	Titulo      string          `json:"titulo"`
	Autor       string          `json:"autor,omitempty"`
	CategoriaID string          `json:"categoria_id,omitempty"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
	Estado      string          `json:"estado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BookListResponse listado de libros.
type BookListResponse struct {
	Items []BookResponse `json:"items"`
}

// CreateCategoryRequest body para POST /api/categorias.
type CreateCategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion,omitempty"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}
