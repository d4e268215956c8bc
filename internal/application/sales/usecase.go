// Package sales orquesta el ciclo de vida de una venta: validación, totales,
// número de factura, persistencia atómica de cabecera + líneas + descuentos de
// stock, y la cancelación compensatoria.
package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/inventory"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
	domsales "github.com/jhoicas/Libreria-api/internal/domain/sales"
)

// Intentos de generación de número de factura antes de rendirse con ErrDuplicate.
const invoiceNumberAttempts = 3

// SaleUseCase crea y cancela ventas de forma transaccional.
type SaleUseCase struct {
	txRunner   TxRunner
	ledger     *inventory.Ledger
	bookRepo   repository.BookRepository
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	ledger *inventory.Ledger,
	bookRepo repository.BookRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:   txRunner,
		ledger:     ledger,
		bookRepo:   bookRepo,
		clientRepo: clientRepo,
		saleRepo:   saleRepo,
	}
}

func metodoPagoValido(m string) bool {
	switch m {
	case entity.PagoEfectivo, entity.PagoTarjeta, entity.PagoTransferencia:
		return true
	}
	return false
}

// CreateSale valida la petición, calcula totales y persiste venta + líneas + stock
// en una sola transacción. El descuento de stock ocurre dentro de la tx con bloqueo
// de fila (Ledger.ReserveInTx): si cualquier línea falla, nada queda visible.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 || !metodoPagoValido(in.MetodoPago) {
		return nil, domain.ErrInvalidInput
	}
	if in.Descuento.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.BookID == "" || item.Cantidad <= 0 || item.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar cliente
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	// Pre-validación de libros y precios (solo lectura, fuera de la tx).
	// El chequeo definitivo de stock lo hace ReserveInTx bajo bloqueo de fila.
	booksByID := make(map[string]*entity.Book)
	for i := range in.Items {
		item := &in.Items[i]
		book, err := uc.bookRepo.GetByID(item.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			return nil, domain.ErrNotFound
		}
		if book.StockActual < item.Cantidad {
			return nil, &domain.InsufficientStockError{
				BookID:    book.ID,
				Requested: item.Cantidad,
				Available: book.StockActual,
			}
		}
		if item.PrecioUnitario.IsZero() {
			item.PrecioUnitario = book.PrecioVenta
		}
		booksByID[item.BookID] = book
	}

	// Totales: subtotal = suma de cantidad por precio unitario; total = subtotal menos descuento
	var subtotal decimal.Decimal
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	if in.Descuento.GreaterThan(subtotal) {
		return nil, domain.ErrInvalidInput
	}
	total := subtotal.Sub(in.Descuento)

	now := time.Now()
	var sale *entity.Sale
	var items []*entity.SaleItem

	// El sufijo del número de factura es aleatorio: ante una colisión (violación de
	// unicidad) se reintenta con un número nuevo en una transacción limpia.
	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		sale = &entity.Sale{
			ID:            uuid.New().String(),
			NumeroFactura: domsales.NewInvoiceNumber(now),
			ClientID:      in.ClientID,
			UserID:        userID,
			Subtotal:      subtotal,
			Descuento:     in.Descuento,
			Total:         total,
			MetodoPago:    in.MetodoPago,
			Estado:        entity.SaleEstadoCompletada,
			Fecha:         now,
			CreatedAt:     now,
		}
		items = items[:0]

		err = uc.txRunner.RunSale(ctx, func(
			saleRepo repository.SaleRepository,
			bookRepo repository.BookRepository,
			movRepo repository.StockMovementRepository,
		) error {
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
			for _, item := range in.Items {
				line := &entity.SaleItem{
					ID:             uuid.New().String(),
					SaleID:         sale.ID,
					BookID:         item.BookID,
					Cantidad:       item.Cantidad,
					PrecioUnitario: item.PrecioUnitario,
					TotalLinea:     item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad))),
				}
				if err := saleRepo.CreateItem(line); err != nil {
					return err
				}
				// Descontar stock como consecuencia del commit, bajo bloqueo de fila.
				if err := uc.ledger.ReserveInTx(bookRepo, movRepo, item.BookID, item.Cantidad, sale.ID, inventory.MotivoVenta, userID, now); err != nil {
					return err
				}
				items = append(items, line)
			}
			return nil
		})
		if err == nil {
			return uc.toResponse(sale, client.Nombre, items), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicate
}

// CancelSale restaura el stock de cada línea y elimina líneas y cabecera como una
// sola unidad atómica.
func (uc *SaleUseCase) CancelSale(ctx context.Context, userID, saleID string) error {
	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		bookRepo repository.BookRepository,
		movRepo repository.StockMovementRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		items, err := saleRepo.GetItemsBySaleID(saleID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			if err := uc.ledger.ReleaseInTx(bookRepo, movRepo, item.BookID, item.Cantidad, sale.ID, inventory.MotivoCancelacion, userID, now); err != nil {
				return err
			}
		}
		if err := saleRepo.DeleteItemsBySaleID(saleID); err != nil {
			return err
		}
		return saleRepo.Delete(saleID)
	})
}

// GetSale obtiene una venta por ID con su detalle completo.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	clientNombre := ""
	if client, _ := uc.clientRepo.GetByID(sale.ClientID); client != nil {
		clientNombre = client.Nombre
	}
	return uc.toResponse(sale, clientNombre, items), nil
}

// ListSales lista ventas sin líneas (el detalle se pide por ID).
func (uc *SaleUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	ventas, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(ventas))}
	for _, s := range ventas {
		out.Items = append(out.Items, *uc.toResponse(s, "", nil))
	}
	return out, nil
}

func (uc *SaleUseCase) toResponse(sale *entity.Sale, clientNombre string, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		NumeroFactura: sale.NumeroFactura,
		ClientID:      sale.ClientID,
		ClientNombre:  clientNombre,
		UserID:        sale.UserID,
		Subtotal:      sale.Subtotal,
		Descuento:     sale.Descuento,
		Total:         sale.Total,
		MetodoPago:    sale.MetodoPago,
		Estado:        sale.Estado,
		Fecha:         sale.Fecha,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:             it.ID,
			BookID:         it.BookID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			TotalLinea:     it.TotalLinea,
		})
	}
	return resp
}
