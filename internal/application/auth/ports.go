package auth

import (
	"context"

	"github.com/jhoicas/Libreria-api/internal/domain/entity"
)

// SessionStore almacena sesiones del lado del servidor con ventana de inactividad
// deslizante. Get y Touch devuelven domain.ErrSessionExpired cuando la sesión no
// existe (nunca creada, cerrada, o expirada por inactividad: para el caller son
// indistinguibles, y así debe ser).
type SessionStore interface {
	Create(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	// Touch renueva la ventana de inactividad y actualiza last_activity_at.
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
