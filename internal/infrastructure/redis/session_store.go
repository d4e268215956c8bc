package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
)

var _ auth.SessionStore = (*SessionStore)(nil)

// SessionStore almacén de sesiones sobre Redis. Cada sesión es un hash
// sesion:{id} con TTL igual a la ventana de inactividad; Touch renueva el TTL
// (ventana deslizante). La expiración es perezosa: Redis borra la clave solo,
// sin barrido propio.
type SessionStore struct {
	client     *redis.Client
	inactivity time.Duration
}

// NewSessionStore construye el almacén de sesiones con la ventana de inactividad dada.
func NewSessionStore(client *redis.Client, inactivity time.Duration) *SessionStore {
	return &SessionStore{client: client, inactivity: inactivity}
}

func sessionKey(id string) string {
	return "sesion:" + id
}

// Create guarda la sesión con el TTL de la ventana de inactividad.
func (s *SessionStore) Create(ctx context.Context, session *entity.Session) error {
	key := sessionKey(session.ID)
	fields := map[string]interface{}{
		"user_id":          session.UserID,
		"role":             session.Role,
		"started_at":       session.StartedAt.Format(time.RFC3339),
		"last_activity_at": session.LastActivityAt.Format(time.RFC3339),
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.inactivity).Err(); err != nil {
		return fmt.Errorf("fijar TTL de sesión: %w", err)
	}
	return nil
}

// Get recupera la sesión. Si no existe (cerrada o expirada por inactividad)
// devuelve domain.ErrSessionExpired.
func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if len(result) == 0 {
		return nil, domain.ErrSessionExpired
	}
	session := &entity.Session{
		ID:     id,
		UserID: result["user_id"],
		Role:   result["role"],
	}
	if t, err := time.Parse(time.RFC3339, result["started_at"]); err == nil {
		session.StartedAt = t
	}
	if t, err := time.Parse(time.RFC3339, result["last_activity_at"]); err == nil {
		session.LastActivityAt = t
	}
	return session, nil
}

// Touch renueva la ventana de inactividad. Si la sesión ya no existe devuelve
// domain.ErrSessionExpired.
func (s *SessionStore) Touch(ctx context.Context, id string) error {
	key := sessionKey(id)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("verificar sesión: %w", err)
	}
	if exists == 0 {
		return domain.ErrSessionExpired
	}
	if err := s.client.HSet(ctx, key, "last_activity_at", time.Now().Format(time.RFC3339)).Err(); err != nil {
		return fmt.Errorf("actualizar actividad de sesión: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.inactivity).Err(); err != nil {
		return fmt.Errorf("renovar TTL de sesión: %w", err)
	}
	return nil
}

// Delete destruye la sesión (logout). Idempotente.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}
