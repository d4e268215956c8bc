package repository

import "github.com/jhoicas/Libreria-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para la traza de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByBook(bookID string, limit, offset int) ([]*entity.StockMovement, error)
}
