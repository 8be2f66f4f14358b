package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("producto no encontrado")
	ErrInvalidImageFormat = errors.New("formato de imagen no válido")
	ErrEmptyInventory     = errors.New("no hay productos registrados en el inventario")
)

// FieldError es un error de validación asociado a un campo del formulario.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// ValidationError agrupa los errores de campo de un formulario rechazado.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// AsValidationError extrae un *ValidationError de la cadena de errores, si existe.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
