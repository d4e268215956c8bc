package entity

import "time"

// Estados válidos para User.
const (
	UserEstadoActivo     = "activo"
	UserEstadoSuspendido = "suspendido"
)

// User representa un usuario del sistema. La eliminación siempre es lógica:
// Estado pasa a suspendido, el email original se conserva en SupersededEmail y
// la columna email recibe un sufijo para liberar el índice único.
type User struct {
	ID              string
	Email           string
	SupersededEmail string // email original cuando la cuenta fue dada de baja
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre          string
	Role            string // admin, seller, inventory, readonly
	Estado          string // activo, suspendido
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
