package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Book. La transición disponible → descontinuado es de una sola vía
// una vez que el libro tiene ventas asociadas (SoftDeletePolicy).
const (
	BookEstadoDisponible    = "disponible"
	BookEstadoDescontinuado = "descontinuado"
)

// Book representa un libro del catálogo. StockActual nunca es negativo; solo el
// InventoryLedger lo muta, siempre dentro de una transacción con bloqueo de fila.
type Book struct {
	ID          string
	ISBN        string // código único
	Titulo      string
	Autor       string
	CategoriaID string
	PrecioVenta decimal.Decimal
	StockActual int
	StockMinimo int
	Estado      string // disponible, descontinuado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
