package entity

import "time"

// Session identidad por petición: quién es el usuario y hasta cuándo vale la sesión.
// Vive en Redis con TTL deslizante; si nadie la toca en la ventana de inactividad,
// simplemente desaparece (expiración perezosa, sin barrido propio).
type Session struct {
	ID             string
	UserID         string
	Role           string
	StartedAt      time.Time
	LastActivityAt time.Time
}
