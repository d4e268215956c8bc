package dto

import "time"

// CreateClientRequest body para POST /api/clientes.
type CreateClientRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Documento string `json:"documento" validate:"required"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// UpdateClientRequest body para PUT /api/clientes/:id.
type UpdateClientRequest struct {
	Nombre    string `json:"nombre,omitempty"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Documento string    `json:"documento"`
	Email     string    `json:"email,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientListResponse listado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
}
