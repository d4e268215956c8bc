package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/authz"
)

// AuthHandler maneja login, logout y el menú de módulos accesibles.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica email/password y devuelve token + usuario.
// Email desconocido y password incorrecto responden igual: 401 sin distinguir.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_CREDENTIALS", "email o contraseña incorrectos"))
		}
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Logout destruye la sesión actual. Idempotente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSessionID(c)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Menu devuelve los módulos y acciones accesibles para el rol de la sesión
// (el frontend construye la navegación a partir de esto).
func (h *AuthHandler) Menu(c *fiber.Ctx) error {
	role := GetRole(c)
	accessible := authz.AccessibleModules(authz.Role(role))
	modules := make(map[string][]string, len(accessible))
	for m, actions := range accessible {
		list := make([]string, 0, len(actions))
		for _, a := range actions {
			list = append(list, string(a))
		}
		modules[string(m)] = list
	}
	return c.JSON(dto.MenuResponse{Role: role, Modules: modules})
}
