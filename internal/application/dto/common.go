package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Flash mensaje de una sola vez mostrado en la vista (level: success, danger, warning).
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ViewResponse respuesta mínima de una vista sin datos.
type ViewResponse struct {
	View string `json:"view"`
}
