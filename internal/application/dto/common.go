package dto

// ErrorResponse cuerpo de error HTTP. Success siempre false para que el frontend
// pueda discriminar sin mirar el status. Required identifica el permiso faltante
// ("module:action") en respuestas 403.
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Required string `json:"required,omitempty"`
}

// Err construye un ErrorResponse.
func Err(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// DeleteResponse resultado de un DELETE que pasó por la SoftDeletePolicy.
// Action es "deleted" (borrado físico) o el estado tombstone aplicado
// ("discontinued", "inactive", "suspended").
type DeleteResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}
