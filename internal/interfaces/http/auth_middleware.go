package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/pkg/jwt"
)

// Locals keys para la identidad de la petición en Fiber.
const (
	LocalSessionID = "session_id"
	LocalUserID    = "user_id"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y exige que la sesión que referencia
// siga viva en el almacén. Un JWT válido con sesión expirada es 401: la fuente de
// verdad de autenticación es la sesión, no el token.
func AuthMiddleware(jwtSecret string, sessions auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("MISSING_TOKEN", "token vacío"))
		}
		// El rol y user_id vigentes son los de la sesión; los del token son solo un espejo.
		sessionID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_TOKEN", "token inválido o expirado"))
		}

		session, err := sessions.Get(c.UserContext(), sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("SESSION_EXPIRED", "sesión expirada, inicie sesión de nuevo"))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error verificando la sesión"))
		}

		c.Locals(LocalSessionID, session.ID)
		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalRole, session.Role)
		return c.Next()
	}
}

// GetSessionID devuelve el ID de sesión del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
