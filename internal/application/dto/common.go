package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta metadatos de listados (sin paginación: los catálogos son chicos).
type ListMeta struct {
	Total int `json:"total"`
}
