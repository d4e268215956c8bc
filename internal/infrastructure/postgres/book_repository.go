package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

const bookColumns = `id, isbn, titulo, autor, categoria_id, precio_venta, stock_actual, stock_minimo, estado, created_at, updated_at`

// BookRepo implementación del puerto BookRepository sobre PostgreSQL (usable con pool o tx).
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador de persistencia para libros. Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.ISBN, &b.Titulo, &b.Autor, &b.CategoriaID, &b.PrecioVenta,
		&b.StockActual, &b.StockMinimo, &b.Estado, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un nuevo libro.
func (r *BookRepo) Create(book *entity.Book) error {
	query := `
		INSERT INTO books (id, isbn, titulo, autor, categoria_id, precio_venta, stock_actual, stock_minimo, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		book.ID, book.ISBN, book.Titulo, book.Autor, book.CategoriaID,
		book.PrecioVenta, book.StockActual, book.StockMinimo, book.Estado,
		book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID obtiene un libro por ID.
func (r *BookRepo) GetByID(id string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// GetByISBN obtiene un libro por su ISBN.
func (r *BookRepo) GetByISBN(isbn string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`
	b, err := scanBook(r.q.QueryRow(context.Background(), query, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book by isbn: %w", err)
	}
	return b, nil
}

// GetForUpdate obtiene un libro bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido cuando el Querier es una transacción.
func (r *BookRepo) GetForUpdate(id string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`
	b, err := scanBook(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book for update: %w", err)
	}
	return b, nil
}

// Update actualiza un libro existente. No permite modificar stock_actual ni estado
// (se manejan vía movimientos y política de borrado).
func (r *BookRepo) Update(book *entity.Book) error {
	query := `
		UPDATE books SET isbn = $2, titulo = $3, autor = $4, categoria_id = $5, precio_venta = $6, stock_minimo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		book.ID, book.ISBN, book.Titulo, book.Autor, book.CategoriaID,
		book.PrecioVenta, book.StockMinimo, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// UpdateStock escribe stock_actual (usado por el motor de inventario, dentro de tx).
func (r *BookRepo) UpdateStock(id string, stockActual int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE books SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		id, stockActual,
	)
	if err != nil {
		return fmt.Errorf("update book stock: %w", err)
	}
	return nil
}

// SetEstado cambia el estado del libro (disponible/descontinuado).
func (r *BookRepo) SetEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE books SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("set book estado: %w", err)
	}
	return nil
}

// Delete elimina un libro por ID (solo cuando no tiene ventas asociadas).
func (r *BookRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// List lista libros con paginación.
func (r *BookRepo) List(limit, offset int) ([]*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY titulo ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// ListLowStock devuelve libros disponibles con stock_actual <= stock_minimo.
func (r *BookRepo) ListLowStock() ([]*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books
		WHERE estado = $1 AND stock_actual <= stock_minimo ORDER BY stock_actual ASC`
	rows, err := r.q.Query(context.Background(), query, entity.BookEstadoDisponible)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
