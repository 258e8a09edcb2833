package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ValidationError describe la regla violada por una entrada. Siempre satisface
// errors.Is(err, ErrInvalidInput); las violaciones de unicidad además ErrDuplicate.
type ValidationError struct {
	Field   string
	Message string
	dup     bool
}

// NewValidationError construye un error de validación para un campo (puede ir vacío).
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewDuplicateError construye un error de validación por valor único repetido.
func NewDuplicateError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, dup: true}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap permite errors.Is contra los sentinels del dominio.
func (e *ValidationError) Unwrap() []error {
	if e.dup {
		return []error{ErrInvalidInput, ErrDuplicate}
	}
	return []error{ErrInvalidInput}
}

// AsValidation extrae el ValidationError de una cadena de errores, si lo hay.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
