package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/ventas.
type CreateSaleRequest struct {
	ClientID   string            `json:"client_id"`
	Items      []SaleItemRequest `json:"items"`
	MetodoPago string            `json:"metodo_pago"`
	Descuento  decimal.Decimal   `json:"descuento,omitempty"`
}

// SaleItemRequest línea de venta (libro, cantidad, precio unitario).
// Si PrecioUnitario va en cero se toma el precio de venta vigente del libro.
type SaleItemRequest struct {
	BookID         string          `json:"book_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// SaleResponse venta con detalle.
type SaleResponse struct {
	ID            string             `json:"id"`
	NumeroFactura string             `json:"numero_factura"`
	ClientID      string             `json:"client_id"`
	ClientNombre  string             `json:"client_nombre,omitempty"`
	UserID        string             `json:"user_id"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Descuento     decimal.Decimal    `json:"descuento"`
	Total         decimal.Decimal    `json:"total"`
	MetodoPago    string             `json:"metodo_pago"`
	Estado        string             `json:"estado"`
	Fecha         time.Time          `json:"fecha"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleItemResponse línea de venta en la respuesta.
type SaleItemResponse struct {
	ID             string          `json:"id"`
	BookID         string          `json:"book_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// SaleListResponse listado de ventas (sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}

// CancelSaleResponse resultado de DELETE /api/ventas/:id.
type CancelSaleResponse struct {
	Success bool `json:"success"`
}
