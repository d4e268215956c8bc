package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para la política de borrado
// ──────────────────────────────────────────────────────────────────────────────

type policyStore struct {
	books   map[string]*entity.Book
	clients map[string]*entity.Client
	users   map[string]*entity.User
	ventas  []*entity.Sale
	items   []*entity.SaleItem
}

func newPolicyStore() *policyStore {
	return &policyStore{
		books:   make(map[string]*entity.Book),
		clients: make(map[string]*entity.Client),
		users:   make(map[string]*entity.User),
	}
}

type policyBookRepo struct{ s *policyStore }

func (r policyBookRepo) Create(b *entity.Book) error { r.s.books[b.ID] = b; return nil }
func (r policyBookRepo) GetByID(id string) (*entity.Book, error) {
	b, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}
func (r policyBookRepo) GetByISBN(string) (*entity.Book, error) { return nil, nil }
func (r policyBookRepo) GetForUpdate(id string) (*entity.Book, error) {
	return r.GetByID(id)
}
func (r policyBookRepo) Update(b *entity.Book) error { r.s.books[b.ID] = b; return nil }
func (r policyBookRepo) UpdateStock(id string, stockActual int) error {
	if b, ok := r.s.books[id]; ok {
		b.StockActual = stockActual
	}
	return nil
}
func (r policyBookRepo) SetEstado(id, estado string) error {
	if b, ok := r.s.books[id]; ok {
		b.Estado = estado
	}
	return nil
}
func (r policyBookRepo) Delete(id string) error                { delete(r.s.books, id); return nil }
func (r policyBookRepo) List(_, _ int) ([]*entity.Book, error) { return nil, nil }
func (r policyBookRepo) ListLowStock() ([]*entity.Book, error) { return nil, nil }

type policyClientRepo struct{ s *policyStore }

func (r policyClientRepo) Create(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r policyClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r policyClientRepo) Update(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r policyClientRepo) SetEstado(id, estado string) error {
	if c, ok := r.s.clients[id]; ok {
		c.Estado = estado
	}
	return nil
}
func (r policyClientRepo) Delete(id string) error                  { delete(r.s.clients, id); return nil }
func (r policyClientRepo) List(_, _ int) ([]*entity.Client, error) { return nil, nil }

type policyUserRepo struct{ s *policyStore }

func (r policyUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r policyUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r policyUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r policyUserRepo) Update(u *entity.User) error           { r.s.users[u.ID] = u; return nil }
func (r policyUserRepo) List(_, _ int) ([]*entity.User, error) { return nil, nil }

type policySaleRepo struct{ s *policyStore }

func (r policySaleRepo) Create(*entity.Sale) error                           { return nil }
func (r policySaleRepo) CreateItem(*entity.SaleItem) error                   { return nil }
func (r policySaleRepo) GetByID(string) (*entity.Sale, error)                { return nil, nil }
func (r policySaleRepo) GetItemsBySaleID(string) ([]*entity.SaleItem, error) { return nil, nil }
func (r policySaleRepo) DeleteItemsBySaleID(string) error                    { return nil }
func (r policySaleRepo) Delete(string) error                                 { return nil }
func (r policySaleRepo) List(_, _ int) ([]*entity.Sale, error)               { return nil, nil }
func (r policySaleRepo) CountByClient(clientID string) (int, error) {
	n := 0
	for _, v := range r.s.ventas {
		if v.ClientID == clientID {
			n++
		}
	}
	return n, nil
}
func (r policySaleRepo) CountItemsByBook(bookID string) (int, error) {
	n := 0
	for _, it := range r.s.items {
		if it.BookID == bookID {
			n++
		}
	}
	return n, nil
}

// policyTxRunner pasa los repos en memoria al callback sin semántica adicional:
// la política de borrado hace una sola escritura, no hay nada que revertir.
type policyTxRunner struct{ s *policyStore }

func (r policyTxRunner) RunDelete(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	bookRepo repository.BookRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(policySaleRepo{r.s}, policyBookRepo{r.s}, policyClientRepo{r.s}, policyUserRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la política: libros
// ──────────────────────────────────────────────────────────────────────────────

func TestBookDelete_SinVentas_BorradoFisico(t *testing.T) {
	s := newPolicyStore()
	s.books["b1"] = &entity.Book{ID: "b1", Estado: entity.BookEstadoDisponible}
	uc := usecase.NewBookUseCase(policyBookRepo{s}, policyTxRunner{s})

	action, err := uc.Delete(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, usecase.ActionDeleted, action)
	assert.NotContains(t, s.books, "b1", "sin historial el registro desaparece")
}

func TestBookDelete_ConVentas_Descontinuado(t *testing.T) {
	s := newPolicyStore()
	s.books["b1"] = &entity.Book{ID: "b1", Estado: entity.BookEstadoDisponible}
	s.items = append(s.items, &entity.SaleItem{ID: "i1", SaleID: "v1", BookID: "b1", Cantidad: 1})
	uc := usecase.NewBookUseCase(policyBookRepo{s}, policyTxRunner{s})

	action, err := uc.Delete(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, usecase.ActionDiscontinued, action)
	require.Contains(t, s.books, "b1", "con historial el registro se conserva")
	assert.Equal(t, entity.BookEstadoDescontinuado, s.books["b1"].Estado)
}

func TestBookDelete_Inexistente(t *testing.T) {
	s := newPolicyStore()
	uc := usecase.NewBookUseCase(policyBookRepo{s}, policyTxRunner{s})
	_, err := uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la política: clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientDelete_SinVentas_BorradoFisico(t *testing.T) {
	s := newPolicyStore()
	s.clients["c1"] = &entity.Client{ID: "c1", Estado: entity.ClientEstadoActivo}
	uc := usecase.NewClientUseCase(policyClientRepo{s}, policyTxRunner{s})

	action, err := uc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, usecase.ActionDeleted, action)
	assert.NotContains(t, s.clients, "c1")
}

func TestClientDelete_ConVentas_PasaAInactivo(t *testing.T) {
	s := newPolicyStore()
	s.clients["c1"] = &entity.Client{ID: "c1", Estado: entity.ClientEstadoActivo}
	s.ventas = append(s.ventas, &entity.Sale{ID: "v1", ClientID: "c1"})
	uc := usecase.NewClientUseCase(policyClientRepo{s}, policyTxRunner{s})

	action, err := uc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, usecase.ActionInactive, action)
	require.Contains(t, s.clients, "c1")
	assert.Equal(t, entity.ClientEstadoInactivo, s.clients["c1"].Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la política: usuarios (siempre tombstone)
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_SiempreSuspende_NuncaBorra(t *testing.T) {
	s := newPolicyStore()
	s.users["u2"] = &entity.User{
		ID:     "u2",
		Email:  "vendedor@libreria.co",
		Estado: entity.UserEstadoActivo,
	}
	uc := usecase.NewUserUseCase(policyUserRepo{s}, policyTxRunner{s})

	action, err := uc.Delete(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, usecase.ActionSuspended, action)

	require.Contains(t, s.users, "u2", "el registro de usuario nunca se borra")
	u := s.users["u2"]
	assert.Equal(t, entity.UserEstadoSuspendido, u.Estado)
	assert.Equal(t, "vendedor@libreria.co", u.SupersededEmail, "el email original se conserva")
	assert.NotEqual(t, "vendedor@libreria.co", u.Email, "el email activo cambia para liberar el índice único")
	assert.Contains(t, u.Email, "+baja-")
	assert.Contains(t, u.Email, "@libreria.co", "el dominio se mantiene")
}

func TestUserDelete_SelfDelete_Prohibido(t *testing.T) {
	s := newPolicyStore()
	s.users["u1"] = &entity.User{ID: "u1", Email: "admin@libreria.co", Estado: entity.UserEstadoActivo}
	uc := usecase.NewUserUseCase(policyUserRepo{s}, policyTxRunner{s})

	_, err := uc.Delete(context.Background(), "u1", "u1")
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
	assert.Equal(t, entity.UserEstadoActivo, s.users["u1"].Estado, "nada cambia")
}

func TestUserDelete_YaSuspendido_Idempotente(t *testing.T) {
	s := newPolicyStore()
	s.users["u2"] = &entity.User{
		ID:              "u2",
		Email:           "vendedor+baja-deadbeef@libreria.co",
		SupersededEmail: "vendedor@libreria.co",
		Estado:          entity.UserEstadoSuspendido,
	}
	uc := usecase.NewUserUseCase(policyUserRepo{s}, policyTxRunner{s})

	action, err := uc.Delete(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, usecase.ActionSuspended, action)
	assert.Equal(t, "vendedor+baja-deadbeef@libreria.co", s.users["u2"].Email,
		"una segunda baja no vuelve a mutar el email")
}

func TestUserDelete_Inexistente(t *testing.T) {
	s := newPolicyStore()
	uc := usecase.NewUserUseCase(policyUserRepo{s}, policyTxRunner{s})
	_, err := uc.Delete(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
