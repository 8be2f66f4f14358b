package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/losmayitos/appstore-api/internal/application/dto"
	"github.com/losmayitos/appstore-api/internal/application/report"
	"github.com/losmayitos/appstore-api/internal/domain"
)

const msgEmptyInventory = "No hay productos registrados en el inventario"

// ReportHandler maneja la generación del reporte de inventario.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar el reporte de inventario en PDF
// @Tags         productos
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReportRequest  true  "Rango de fechas"
// @Success      200  {file}    file
// @Failure      200  {object}  dto.StatusResponse  "Falla reportada en el payload; distinguir por Content-Type"
// @Router       /Productos/GenerarReporte [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(dto.Fail("Error al generar el reporte: cuerpo inválido"))
	}

	pdfBytes, err := h.uc.Generate(req.FechaInicial, req.FechaFinal)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInventory) {
			return c.JSON(dto.Fail(msgEmptyInventory))
		}
		return c.JSON(dto.Fail("Error al generar el reporte: " + err.Error()))
	}

	fileName := fmt.Sprintf("Reporte_Inventario_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(pdfBytes)
}
