package dto

// ErrorResponse cuerpo de error HTTP. Detail conserva el texto que leen los clientes existentes
// ("Store not found", "Stock item not found", ...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse respuesta simple con un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse respuesta de /health.
type StatusResponse struct {
	Status string `json:"status"`
}
