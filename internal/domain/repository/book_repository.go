package repository

import "github.com/jhoicas/Libreria-api/internal/domain/entity"

// BookRepository define el puerto de persistencia para Book (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro de una tx.
type BookRepository interface {
	Create(book *entity.Book) error
	GetByID(id string) (*entity.Book, error)
	GetByISBN(isbn string) (*entity.Book, error)
	GetForUpdate(id string) (*entity.Book, error)
	Update(book *entity.Book) error
	// UpdateStock escribe stock_actual. Reservado al InventoryLedger.
	UpdateStock(id string, stockActual int) error
	SetEstado(id, estado string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Book, error)
	// ListLowStock devuelve libros disponibles con stock_actual <= stock_minimo.
	ListLowStock() ([]*entity.Book, error)
}
