package usecase

import (
	"context"

	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// DeleteTxRunner ejecuta la SoftDeletePolicy dentro de una transacción: el chequeo de
// historial dependiente y el borrado/tombstone deben ser atómicos frente a la creación
// concurrente de ventas.
type DeleteTxRunner interface {
	RunDelete(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		bookRepo repository.BookRepository,
		clientRepo repository.ClientRepository,
		userRepo repository.UserRepository,
	) error) error
}

// Resultados de la SoftDeletePolicy para la respuesta HTTP.
const (
	ActionDeleted      = "deleted"
	ActionDiscontinued = "discontinued"
	ActionInactive     = "inactive"
	ActionSuspended    = "suspended"
)
