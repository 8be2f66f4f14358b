package report

import "github.com/losmayitos/appstore-api/internal/domain/entity"

// PDFGenerator define el puerto del colaborador de renderizado: recibe el
// reporte ya calculado y devuelve los bytes del documento. Cualquier error de
// render aborta el documento completo; nunca se devuelve un PDF parcial.
type PDFGenerator interface {
	GenerateInventoryPDF(rep *entity.InventoryReport) ([]byte, error)
}
