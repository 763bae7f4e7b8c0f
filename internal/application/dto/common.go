package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse envoltorio de los listados completos.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye un ListResponse aplicando fn a cada elemento.
func NewList[E any, T any](rows []E, fn func(E) T) ListResponse[T] {
	items := make([]T, 0, len(rows))
	for _, r := range rows {
		items = append(items, fn(r))
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
