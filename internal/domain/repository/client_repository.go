package repository

import "github.com/jhoicas/Libreria-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	SetEstado(id, estado string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Client, error)
}
