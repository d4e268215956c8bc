package entity

import "time"

// Category agrupa libros del catálogo.
type Category struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
}
