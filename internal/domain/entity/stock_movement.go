package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada" // devolución por cancelación o ajuste positivo
	MovementSalida  = "salida"  // venta o ajuste negativo
)

// StockMovement deja traza de cada mutación de stock_actual. ReferenceID apunta a la
// venta que originó el movimiento, o queda vacío en ajustes manuales.
type StockMovement struct {
	ID          string
	BookID      string
	Tipo        string // entrada, salida
	Cantidad    int    // siempre positiva; el signo lo da Tipo
	ReferenceID string // ID de la venta asociada, si aplica
	Motivo      string // venta, cancelacion, ajuste
	CreatedAt   time.Time
	CreatedBy   string
}
