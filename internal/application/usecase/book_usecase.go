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

// BookUseCase aplica reglas de negocio para el catálogo de libros, incluida la
// SoftDeletePolicy: un libro con ventas asociadas se descontinúa, nunca se borra.
type BookUseCase struct {
	repo     repository.BookRepository
	deleteTx DeleteTxRunner
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(repo repository.BookRepository, deleteTx DeleteTxRunner) *BookUseCase {
	return &BookUseCase{repo: repo, deleteTx: deleteTx}
}

// Create da de alta un libro. ISBN duplicado retorna ErrDuplicate.
func (uc *BookUseCase) Create(in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.ISBN == "" || in.Titulo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 || in.StockMinimo < 0 || in.PrecioVenta.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	book := &entity.Book{
		ID:          uuid.New().String(),
		ISBN:        in.ISBN,
		Titulo:      in.Titulo,
		Autor:       in.Autor,
		CategoriaID: in.CategoriaID,
		PrecioVenta: in.PrecioVenta,
		StockActual: in.StockActual,
		StockMinimo: in.StockMinimo,
		Estado:      entity.BookEstadoDisponible,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(book); err != nil {
		return nil, err
	}
	return bookToResponse(book), nil
}

// GetByID obtiene un libro por ID. Retorna ErrNotFound si no existe.
func (uc *BookUseCase) GetByID(id string) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	return bookToResponse(book), nil
}

// List lista el catálogo.
func (uc *BookUseCase) List(limit, offset int) (*dto.BookListResponse, error) {
	books, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.BookListResponse{Items: make([]dto.BookResponse, 0, len(books))}
	for _, b := range books {
		out.Items = append(out.Items, *bookToResponse(b))
	}
	return out, nil
}

// Update modifica datos del catálogo. Nunca toca stock_actual ni estado.
func (uc *BookUseCase) Update(id string, in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titulo != "" {
		book.Titulo = in.Titulo
	}
	if in.Autor != "" {
		book.Autor = in.Autor
	}
	if in.CategoriaID != "" {
		book.CategoriaID = in.CategoriaID
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		book.PrecioVenta = *in.PrecioVenta
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		book.StockMinimo = *in.StockMinimo
	}
	book.UpdatedAt = time.Now()
	if err := uc.repo.Update(book); err != nil {
		return nil, err
	}
	return bookToResponse(book), nil
}

// Delete aplica la SoftDeletePolicy: con líneas de venta que lo referencien el libro
// pasa a descontinuado (una sola vía); sin historial se elimina físicamente.
// El chequeo y la acción van en la misma transacción para no competir con una venta
// concurrente del mismo libro.
func (uc *BookUseCase) Delete(ctx context.Context, id string) (string, error) {
	action := ""
	err := uc.deleteTx.RunDelete(ctx, func(
		saleRepo repository.SaleRepository,
		bookRepo repository.BookRepository,
		clientRepo repository.ClientRepository,
		userRepo repository.UserRepository,
	) error {
		book, err := bookRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if book == nil {
			return domain.ErrNotFound
		}
		refs, err := saleRepo.CountItemsByBook(id)
		if err != nil {
			return err
		}
		if refs > 0 {
			action = ActionDiscontinued
			return bookRepo.SetEstado(id, entity.BookEstadoDescontinuado)
		}
		action = ActionDeleted
		return bookRepo.Delete(id)
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

func bookToResponse(b *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Titulo:      b.Titulo,
		Autor:       b.Autor,
		CategoriaID: b.CategoriaID,
		PrecioVenta: b.PrecioVenta,
		StockActual: b.StockActual,
		StockMinimo: b.StockMinimo,
		Estado:      b.Estado,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
