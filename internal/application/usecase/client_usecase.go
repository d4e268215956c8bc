package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// ClientUseCase aplica reglas de negocio para clientes. La SoftDeletePolicy marca
// inactivo a todo cliente con ventas en el historial.
type ClientUseCase struct {
	repo     repository.ClientRepository
	deleteTx DeleteTxRunner
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, deleteTx DeleteTxRunner) *ClientUseCase {
	return &ClientUseCase{repo: repo, deleteTx: deleteTx}
}

// Create da de alta un cliente. Documento duplicado retorna ErrDuplicate.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nombre == "" || in.Documento == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Documento: in.Documento,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		Estado:    entity.ClientEstadoActivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// List lista clientes.
func (uc *ClientUseCase) List(limit, offset int) (*dto.ClientListResponse, error) {
	clients, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{Items: make([]dto.ClientResponse, 0, len(clients))}
	for _, c := range clients {
		out.Items = append(out.Items, *clientToResponse(c))
	}
	return out, nil
}

// Update modifica datos de perfil del cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		client.Nombre = in.Nombre
	}
	if in.Email != "" {
		client.Email = in.Email
	}
	if in.Telefono != "" {
		client.Telefono = in.Telefono
	}
	if in.Direccion != "" {
		client.Direccion = in.Direccion
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// Delete aplica la SoftDeletePolicy: con ventas que lo referencien el cliente pasa a
// inactivo; sin historial se elimina físicamente. Chequeo y acción en la misma tx.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) (string, error) {
	action := ""
	err := uc.deleteTx.RunDelete(ctx, func(
		saleRepo repository.SaleRepository,
		bookRepo repository.BookRepository,
		clientRepo repository.ClientRepository,
		userRepo repository.UserRepository,
	) error {
		client, err := clientRepo.GetByID(id)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		refs, err := saleRepo.CountByClient(id)
		if err != nil {
			return err
		}
		if refs > 0 {
			action = ActionInactive
			return clientRepo.SetEstado(id, entity.ClientEstadoInactivo)
		}
		action = ActionDeleted
		return clientRepo.Delete(id)
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Documento: c.Documento,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		Estado:    c.Estado,
		CreatedAt: c.CreatedAt,
	}
}
