// Package inventory implementa el libro mayor de stock: reserve/release son las únicas
// operaciones que mutan stock_actual, siempre bajo bloqueo de fila dentro de una tx.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// Motivos registrados en la traza de movimientos.
const (
	MotivoVenta       = "venta"
	MotivoCancelacion = "cancelacion"
	MotivoAjuste      = "ajuste"
)

// Ledger aplica la invariante de stock: stock_actual nunca queda negativo tras un
// reserve, y release es la compensación exacta de un reserve previo. Es sin estado;
// los repositorios llegan atados a la transacción del caller.
type Ledger struct{}

// NewLedger construye el ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ReserveInTx bloquea la fila del libro (SELECT FOR UPDATE), verifica que haya stock
// suficiente y descuenta. La verificación y el descuento ocurren bajo el mismo bloqueo:
// dos ventas concurrentes del mismo libro se serializan y la perdedora recibe
// InsufficientStockError sin mutar nada.
func (l *Ledger) ReserveInTx(
	bookRepo repository.BookRepository,
	movRepo repository.StockMovementRepository,
	bookID string,
	cantidad int,
	referenceID, motivo, userID string,
	now time.Time,
) error {
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	book, err := bookRepo.GetForUpdate(bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return domain.ErrNotFound
	}
	if book.StockActual < cantidad {
		return &domain.InsufficientStockError{
			BookID:    bookID,
			Requested: cantidad,
			Available: book.StockActual,
		}
	}
	if err := bookRepo.UpdateStock(bookID, book.StockActual-cantidad); err != nil {
		return err
	}
	return movRepo.Create(&entity.StockMovement{
		ID:          uuid.New().String(),
		BookID:      bookID,
		Tipo:        entity.MovementSalida,
		Cantidad:    cantidad,
		ReferenceID: referenceID,
		Motivo:      motivo,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
}

// ReleaseInTx devuelve stock incondicionalmente (compensación de un reserve previo,
// p. ej. al cancelar una venta). Bloquea la fila igual que reserve para serializar
// con ventas concurrentes del mismo libro.
func (l *Ledger) ReleaseInTx(
	bookRepo repository.BookRepository,
	movRepo repository.StockMovementRepository,
	bookID string,
	cantidad int,
	referenceID, motivo, userID string,
	now time.Time,
) error {
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	book, err := bookRepo.GetForUpdate(bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return domain.ErrNotFound
	}
	if err := bookRepo.UpdateStock(bookID, book.StockActual+cantidad); err != nil {
		return err
	}
	return movRepo.Create(&entity.StockMovement{
		ID:          uuid.New().String(),
		BookID:      bookID,
		Tipo:        entity.MovementEntrada,
		Cantidad:    cantidad,
		ReferenceID: referenceID,
		Motivo:      motivo,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
}
