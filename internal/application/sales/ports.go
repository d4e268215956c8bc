package sales

import (
	"context"

	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos de
// ventas, libros y movimientos. Todo lo que escribe una venta (cabecera, líneas,
// descuentos de stock) entra o sale completo: sin commits parciales.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		bookRepo repository.BookRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// ReceiptItem línea de venta enriquecida para el comprobante PDF.
type ReceiptItem struct {
	Item       *entity.SaleItem
	BookTitulo string
	BookISBN   string
}

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, client *entity.Client, items []ReceiptItem) ([]byte, error)
}
