package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrValidation es el sentinel contra el que coinciden todos los *ValidationError.
	ErrValidation = errors.New("validation error")
)

// CodeValidation código estable de los errores de validación corregibles por el cliente.
const CodeValidation = "VALIDATION_ERROR"

// ValidationError error de entrada corregible por quien llama. Se produce siempre
// antes de cualquier llamada a almacenamiento y su Message se muestra tal cual al usuario.
type ValidationError struct {
	Message string
}

// NewValidationError construye un VALIDATION_ERROR con el mensaje dado.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// Code devuelve CodeValidation.
func (e *ValidationError) Code() string { return CodeValidation }

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ValidationMessage devuelve el mensaje si err es (o envuelve) un *ValidationError.
func ValidationMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}
