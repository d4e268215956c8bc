package inventory

import (
	"context"

	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para los ajustes de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
