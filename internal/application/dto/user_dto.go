package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=admin seller inventory readonly"`
}

// UpdateUserRequest entrada para PUT /api/usuarios/:id.
type UpdateUserRequest struct {
	Nombre string `json:"nombre,omitempty"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=admin seller inventory readonly"`
	Estado string `json:"estado,omitempty" validate:"omitempty,oneof=activo suspendido"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Role      string    `json:"role"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
