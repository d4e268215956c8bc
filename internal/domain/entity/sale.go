package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleEstadoCompletada = "completada"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
)

// Sale representa la cabecera de una venta. Invariantes: Total = Subtotal - Descuento;
// Subtotal suma Cantidad por PrecioUnitario de cada línea; NumeroFactura es único y se asigna
// una sola vez al confirmar la venta.
type Sale struct {
	ID            string
	NumeroFactura string
	ClientID      string
	UserID        string
	Subtotal      decimal.Decimal
	Descuento     decimal.Decimal
	Total         decimal.Decimal
	MetodoPago    string
	Estado        string
	Fecha         time.Time
	CreatedAt     time.Time
}
