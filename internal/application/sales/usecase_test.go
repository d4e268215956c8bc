package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/inventory"
	"github.com/jhoicas/Libreria-api/internal/application/sales"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con semántica transaccional (snapshot + restore en error)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	books     map[string]*entity.Book
	clients   map[string]*entity.Client
	ventas    map[string]*entity.Sale
	items     map[string][]*entity.SaleItem // por sale_id
	movements []*entity.StockMovement

	// failSaleCreates: las primeras N llamadas a saleRepo.Create fallan con ErrDuplicate
	// (simula colisión del número de factura).
	failSaleCreates int
}

func newMemStore() *memStore {
	return &memStore{
		books:   make(map[string]*entity.Book),
		clients: make(map[string]*entity.Client),
		ventas:  make(map[string]*entity.Sale),
		items:   make(map[string][]*entity.SaleItem),
	}
}

func (s *memStore) addBook(id string, stock int, precio int64) {
	s.books[id] = &entity.Book{
		ID:          id,
		ISBN:        "978-" + id,
		Titulo:      "Libro " + id,
		PrecioVenta: decimal.NewFromInt(precio),
		StockActual: stock,
		StockMinimo: 1,
		Estado:      entity.BookEstadoDisponible,
	}
}

func (s *memStore) addClient(id string) {
	s.clients[id] = &entity.Client{ID: id, Nombre: "Cliente " + id, Documento: "CC-" + id, Estado: entity.ClientEstadoActivo}
}

type snapshot struct {
	books     map[string]entity.Book
	ventas    map[string]entity.Sale
	items     map[string][]entity.SaleItem
	movements int
}

func (s *memStore) snapshot() snapshot {
	snap := snapshot{
		books:     make(map[string]entity.Book, len(s.books)),
		ventas:    make(map[string]entity.Sale, len(s.ventas)),
		items:     make(map[string][]entity.SaleItem, len(s.items)),
		movements: len(s.movements),
	}
	for id, b := range s.books {
		snap.books[id] = *b
	}
	for id, v := range s.ventas {
		snap.ventas[id] = *v
	}
	for id, lines := range s.items {
		copia := make([]entity.SaleItem, len(lines))
		for i, it := range lines {
			copia[i] = *it
		}
		snap.items[id] = copia
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.books = make(map[string]*entity.Book, len(snap.books))
	for id := range snap.books {
		b := snap.books[id]
		s.books[id] = &b
	}
	s.ventas = make(map[string]*entity.Sale, len(snap.ventas))
	for id := range snap.ventas {
		v := snap.ventas[id]
		s.ventas[id] = &v
	}
	s.items = make(map[string][]*entity.SaleItem, len(snap.items))
	for id, lines := range snap.items {
		copia := make([]*entity.SaleItem, len(lines))
		for i := range lines {
			it := lines[i]
			copia[i] = &it
		}
		s.items[id] = copia
	}
	s.movements = s.movements[:snap.movements]
}

// ── repos sobre el store ──────────────────────────────────────────────────────

type memBookRepo struct{ s *memStore }

func (r memBookRepo) Create(b *entity.Book) error { r.s.books[b.ID] = b; return nil }
func (r memBookRepo) GetByID(id string) (*entity.Book, error) {
	b, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	copia := *b
	return &copia, nil
}
func (r memBookRepo) GetByISBN(isbn string) (*entity.Book, error) { return nil, nil }
func (r memBookRepo) GetForUpdate(id string) (*entity.Book, error) {
	return r.GetByID(id)
}
func (r memBookRepo) Update(b *entity.Book) error { r.s.books[b.ID] = b; return nil }
func (r memBookRepo) UpdateStock(id string, stockActual int) error {
	if b, ok := r.s.books[id]; ok {
		b.StockActual = stockActual
	}
	return nil
}
func (r memBookRepo) SetEstado(id, estado string) error {
	if b, ok := r.s.books[id]; ok {
		b.Estado = estado
	}
	return nil
}
func (r memBookRepo) Delete(id string) error                { delete(r.s.books, id); return nil }
func (r memBookRepo) List(_, _ int) ([]*entity.Book, error) { return nil, nil }
func (r memBookRepo) ListLowStock() ([]*entity.Book, error) { return nil, nil }

type memClientRepo struct{ s *memStore }

func (r memClientRepo) Create(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r memClientRepo) Update(c *entity.Client) error     { return nil }
func (r memClientRepo) SetEstado(id, estado string) error { return nil }
func (r memClientRepo) Delete(id string) error            { return nil }
func (r memClientRepo) List(_, _ int) ([]*entity.Client, error) { return nil, nil }

type memSaleRepo struct{ s *memStore }

func (r memSaleRepo) Create(sale *entity.Sale) error {
	if r.s.failSaleCreates > 0 {
		r.s.failSaleCreates--
		return domain.ErrDuplicate
	}
	for _, existing := range r.s.ventas {
		if existing.NumeroFactura == sale.NumeroFactura {
			return domain.ErrDuplicate
		}
	}
	copia := *sale
	r.s.ventas[sale.ID] = &copia
	return nil
}
func (r memSaleRepo) CreateItem(item *entity.SaleItem) error {
	copia := *item
	r.s.items[item.SaleID] = append(r.s.items[item.SaleID], &copia)
	return nil
}
func (r memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	v, ok := r.s.ventas[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}
func (r memSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	return r.s.items[saleID], nil
}
func (r memSaleRepo) DeleteItemsBySaleID(saleID string) error {
	delete(r.s.items, saleID)
	return nil
}
func (r memSaleRepo) Delete(id string) error { delete(r.s.ventas, id); return nil }
func (r memSaleRepo) List(_, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range r.s.ventas {
		out = append(out, v)
	}
	return out, nil
}
func (r memSaleRepo) CountByClient(clientID string) (int, error) {
	n := 0
	for _, v := range r.s.ventas {
		if v.ClientID == clientID {
			n++
		}
	}
	return n, nil
}
func (r memSaleRepo) CountItemsByBook(bookID string) (int, error) {
	n := 0
	for _, lines := range r.s.items {
		for _, it := range lines {
			if it.BookID == bookID {
				n++
			}
		}
	}
	return n, nil
}

type memMovementRepo struct{ s *memStore }

func (r memMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r memMovementRepo) List(_, _ int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}
func (r memMovementRepo) ListByBook(bookID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.BookID == bookID {
			out = append(out, m)
		}
	}
	return out, nil
}

// memTxRunner emula la atomicidad: toma un snapshot antes del callback y lo
// restaura si falla, como haría el rollback de la transacción real.
type memTxRunner struct{ s *memStore }

func (r memTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	bookRepo repository.BookRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(memSaleRepo{r.s}, memBookRepo{r.s}, memMovementRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func newSaleUC(s *memStore) *sales.SaleUseCase {
	return sales.NewSaleUseCase(
		memTxRunner{s},
		inventory.NewLedger(),
		memBookRepo{s},
		memClientRepo{s},
		memSaleRepo{s},
	)
}

func saleRequest(items ...dto.SaleItemRequest) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ClientID:   "c1",
		Items:      items,
		MetodoPago: entity.PagoEfectivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_CalculaTotalesYDescuentaStock(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 200)
	s.addBook("b2", 5, 100)
	s.addClient("c1")
	uc := newSaleUC(s)

	in := saleRequest(
		dto.SaleItemRequest{BookID: "b1", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(200)},
		dto.SaleItemRequest{BookID: "b2", Cantidad: 3, PrecioUnitario: decimal.NewFromInt(100)},
	)
	in.Descuento = decimal.NewFromInt(50)

	out, err := uc.CreateSale(context.Background(), "u1", in)
	require.NoError(t, err)

	// subtotal = 2*200 + 3*100 = 700; total = 700 - 50 = 650
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(700)), "subtotal = suma de lineas")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(650)), "total = subtotal - descuento")
	assert.Equal(t, entity.SaleEstadoCompletada, out.Estado)
	assert.Regexp(t, `^VEN-\d{8}-\d{4}$`, out.NumeroFactura)
	assert.Len(t, out.Items, 2)

	assert.Equal(t, 8, s.books["b1"].StockActual)
	assert.Equal(t, 2, s.books["b2"].StockActual)
	assert.Len(t, s.movements, 2, "una salida por línea")
	for _, m := range s.movements {
		assert.Equal(t, entity.MovementSalida, m.Tipo)
		assert.Equal(t, out.ID, m.ReferenceID, "el movimiento referencia la venta")
	}
}

func TestCreateSale_PrecioCero_TomaElPrecioDelLibro(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 350)
	s.addClient("c1")
	uc := newSaleUC(s)

	out, err := uc.CreateSale(context.Background(), "u1",
		saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 2}))
	require.NoError(t, err)

	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(700)),
		"precio unitario en cero usa el precio de venta vigente del libro")
}

func TestCreateSale_SinItems_Invalida(t *testing.T) {
	s := newMemStore()
	s.addClient("c1")
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), "u1", saleRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_MetodoPagoInvalido(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	s.addClient("c1")
	uc := newSaleUC(s)

	in := saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 1})
	in.MetodoPago = "bitcoin"
	_, err := uc.CreateSale(context.Background(), "u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_DescuentoMayorQueSubtotal_Invalido(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	s.addClient("c1")
	uc := newSaleUC(s)

	in := saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 1})
	in.Descuento = decimal.NewFromInt(500)
	_, err := uc.CreateSale(context.Background(), "u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), "u1",
		saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 1}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_StockInsuficiente_NoDejaRastro(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	s.addBook("b2", 1, 100) // insuficiente para la segunda línea
	s.addClient("c1")
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), "u1", saleRequest(
		dto.SaleItemRequest{BookID: "b1", Cantidad: 2},
		dto.SaleItemRequest{BookID: "b2", Cantidad: 5},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada visible: ni venta, ni líneas, ni movimientos, ni stock tocado.
	assert.Empty(t, s.ventas, "no debe quedar cabecera de venta")
	assert.Empty(t, s.items, "no deben quedar líneas")
	assert.Empty(t, s.movements, "no deben quedar movimientos")
	assert.Equal(t, 10, s.books["b1"].StockActual, "rollback restaura el stock de la primera línea")
	assert.Equal(t, 1, s.books["b2"].StockActual)
}

func TestCreateSale_FacturaDuplicada_ReintentaConOtroNumero(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	s.addClient("c1")
	s.failSaleCreates = 2 // las dos primeras inserciones chocan
	uc := newSaleUC(s)

	out, err := uc.CreateSale(context.Background(), "u1",
		saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 1}))
	require.NoError(t, err, "la colisión de número de factura se reintenta")
	assert.Len(t, s.ventas, 1)
	assert.Equal(t, 9, s.books["b1"].StockActual, "el stock se descuenta una sola vez")
	assert.NotEmpty(t, out.NumeroFactura)
}

func TestCreateSale_FacturaDuplicadaPersistente_Rinde409(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	s.addClient("c1")
	s.failSaleCreates = 100 // siempre choca
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), "u1",
		saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 1}))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, s.ventas)
	assert.Equal(t, 10, s.books["b1"].StockActual, "los intentos fallidos no tocan el stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CancelSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelSale_RestauraStockYEliminaVenta(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 200)
	s.addBook("b2", 5, 100)
	s.addClient("c1")
	uc := newSaleUC(s)

	out, err := uc.CreateSale(context.Background(), "u1", saleRequest(
		dto.SaleItemRequest{BookID: "b1", Cantidad: 4},
		dto.SaleItemRequest{BookID: "b2", Cantidad: 2},
	))
	require.NoError(t, err)
	require.Equal(t, 6, s.books["b1"].StockActual)

	require.NoError(t, uc.CancelSale(context.Background(), "u1", out.ID))

	assert.Equal(t, 10, s.books["b1"].StockActual, "crear y cancelar es neutro para el stock")
	assert.Equal(t, 5, s.books["b2"].StockActual)
	assert.Empty(t, s.ventas, "la cabecera desaparece")
	assert.Empty(t, s.items, "las líneas desaparecen")

	// Traza completa: 2 salidas (venta) + 2 entradas (cancelación)
	entradas := 0
	for _, m := range s.movements {
		if m.Tipo == entity.MovementEntrada {
			entradas++
			assert.Equal(t, inventory.MotivoCancelacion, m.Motivo)
		}
	}
	assert.Equal(t, 2, entradas)
}

func TestCancelSale_VentaInexistente(t *testing.T) {
	s := newMemStore()
	uc := newSaleUC(s)
	err := uc.CancelSale(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetSale / ListSales
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_IncluyeDetalleYNombreDelCliente(t *testing.T) {
	s := newMemStore()
	s.addBook("b1", 10, 100)
	s.addClient("c1")
	uc := newSaleUC(s)

	created, err := uc.CreateSale(context.Background(), "u1",
		saleRequest(dto.SaleItemRequest{BookID: "b1", Cantidad: 2}))
	require.NoError(t, err)

	out, err := uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.NumeroFactura, out.NumeroFactura)
	assert.Equal(t, "Cliente c1", out.ClientNombre)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Cantidad)
}

func TestGetSale_Inexistente(t *testing.T) {
	s := newMemStore()
	uc := newSaleUC(s)
	_, err := uc.GetSale(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
