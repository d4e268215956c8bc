package repository

import "github.com/jhoicas/Libreria-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las líneas pertenecen a la venta: se crean y eliminan junto con ella, en la misma tx.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	DeleteItemsBySaleID(saleID string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Sale, error)
	// CountByClient y CountItemsByBook alimentan la SoftDeletePolicy (¿hay historial dependiente?).
	CountByClient(clientID string) (int, error)
	CountItemsByBook(bookID string) (int, error)
}
