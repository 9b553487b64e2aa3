package dto

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Tipos de mensaje flash.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// FlashMessage mensaje de un solo uso que sobrevive a un redirect.
type FlashMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FormResponse describe un formulario: valores actuales, opciones de los selects y flash pendiente.
type FormResponse struct {
	Form    string              `json:"form"`
	Action  string              `json:"action"`
	Values  any                 `json:"values,omitempty"`
	Options map[string][]string `json:"options,omitempty"`
	Flash   *FlashMessage       `json:"flash,omitempty"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
