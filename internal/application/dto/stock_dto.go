package dto

import "time"

// AdjustStockRequest body para POST /api/stock/ajustes. Cantidad con signo:
// positiva suma stock, negativa resta (y falla si dejaría el stock negativo).
type AdjustStockRequest struct {
	BookID   string `json:"book_id"`
	Cantidad int    `json:"cantidad"`
	Motivo   string `json:"motivo,omitempty"`
}

// StockMovementResponse movimiento en respuestas.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	BookID      string    `json:"book_id"`
	Tipo        string    `json:"tipo"`
	Cantidad    int       `json:"cantidad"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Motivo      string    `json:"motivo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

// StockMovementListResponse listado de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
}

// LowStockReportResponse reporte de libros en o bajo su stock mínimo.
type LowStockReportResponse struct {
	Items []BookResponse `json:"items"`
}
