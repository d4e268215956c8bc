package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain/authz"
)

// RequirePermission exige que el rol de la sesión tenga la acción sobre el módulo.
// Denegación por defecto: rol, módulo o acción desconocidos son 403. El cuerpo del
// 403 incluye el permiso faltante en formato "module:action" para que el frontend
// pueda explicar qué falta.
//
// Cuando el permiso pasa, renueva la ventana de inactividad de la sesión: cada
// petición autorizada cuenta como actividad.
func RequirePermission(sessions auth.SessionStore, module authz.Module, action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := authz.Role(GetRole(c))
		if !authz.Allows(role, module, action) {
			resp := dto.Err("FORBIDDEN", "permiso insuficiente")
			resp.Required = string(module) + ":" + string(action)
			return c.Status(fiber.StatusForbidden).JSON(resp)
		}
		// Best effort: si la sesión expiró justo aquí, la siguiente petición lo verá.
		_ = sessions.Touch(c.UserContext(), GetSessionID(c))
		return c.Next()
	}
}
