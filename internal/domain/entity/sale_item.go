package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de venta. Pertenece en exclusiva a su Sale:
// solo se crea o elimina dentro de la transacción de la venta.
type SaleItem struct {
	ID             string
	SaleID         string
	BookID         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	TotalLinea     decimal.Decimal
}
