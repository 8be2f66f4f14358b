package dto

import (
	"time"

	"github.com/losmayitos/appstore-api/internal/domain"
)

// StatusResponse respuesta estándar de las operaciones mutadoras: la falla se
// reporta en el cuerpo (success=false + message), no en el código HTTP.
type StatusResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errores []domain.FieldError `json:"errores,omitempty"`
}

// OK respuesta de éxito sin payload adicional.
func OK() StatusResponse {
	return StatusResponse{Success: true}
}

// Fail respuesta de falla con mensaje legible.
func Fail(message string) StatusResponse {
	return StatusResponse{Success: false, Message: message}
}

// NextIDResponse respuesta del siguiente ID sugerido (solo para mostrar en el
// formulario; el ID real lo asigna el insert).
type NextIDResponse struct {
	Success     bool `json:"success"`
	SiguienteID int  `json:"siguienteId"`
}

// ReportRequest rango de fechas para el reporte de inventario.
type ReportRequest struct {
	FechaInicial time.Time `json:"fechaInicial"`
	FechaFinal   time.Time `json:"fechaFinal"`
}
