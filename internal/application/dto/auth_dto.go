package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MenuResponse módulos accesibles para el rol de la sesión (construcción de menús).
type MenuResponse struct {
	Role    string              `json:"role"`
	Modules map[string][]string `json:"modules"`
}
