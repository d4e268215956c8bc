package entity

import "time"

// Estados válidos para Client.
const (
	ClientEstadoActivo   = "activo"
	ClientEstadoInactivo = "inactivo"
)

// Client representa un cliente de la librería. La eliminación pasa por SoftDeletePolicy:
// con ventas asociadas el registro se marca inactivo, nunca se borra.
type Client struct {
	ID        string
	Nombre    string
	Documento string // cédula o NIT
	Email     string
	Telefono  string
	Direccion string
	Estado    string // activo, inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}
