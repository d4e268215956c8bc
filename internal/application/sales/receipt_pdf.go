package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera el comprobante imprimible (PDF) de una venta.
type ReceiptPDFUseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
	bookRepo   repository.BookRepository
	generator  ReceiptGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	bookRepo repository.BookRepository,
	generator ReceiptGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		bookRepo:   bookRepo,
		generator:  generator,
	}
}

// DownloadReceiptPDF carga la venta con su detalle y genera el PDF.
// Retorna (bytes, nombre de archivo, error).
func (uc *ReceiptPDFUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	lines, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener detalle: %w", err)
	}
	items := make([]ReceiptItem, 0, len(lines))
	for _, line := range lines {
		ri := ReceiptItem{Item: line}
		if book, _ := uc.bookRepo.GetByID(line.BookID); book != nil {
			ri.BookTitulo = book.Titulo
			ri.BookISBN = book.ISBN
		}
		items = append(items, ri)
	}
	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, sale, client, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	filename := fmt.Sprintf("%s.pdf", sale.NumeroFactura)
	return pdfBytes, filename, nil
}
