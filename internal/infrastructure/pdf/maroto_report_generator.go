// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Contenido del documento (A4):
//
//	┌────────────────────────────────────────────────────────────┐
//	│  LOGO (si existe en la raíz estática)                      │
//	│  TÍTULO: India Brava - Reporte de Inventario               │
//	│  Fecha de generación + nota                                │
//	│  TABLA: ID | U. Medida | Cont. Neto | Nombre | Stock |     │
//	│         Precio Unit. | Valor Total                         │
//	│  RESUMEN: total de productos / valor total                 │
//	│  STOCK CRÍTICO (< 15 unidades)                             │
//	│  ESTADÍSTICAS: mayor y menor stock                         │
//	│  LEYENDA de cierre                                         │
//	└────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/losmayitos/appstore-api/internal/application/report"
	"github.com/losmayitos/appstore-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// logoFile nombre del logo dentro de <root>/images; opcional.
const logoFile = "logo.jpeg"

// printer con convención es-CO: miles con punto, decimales con coma.
var printer = message.NewPrinter(language.MustParse("es-CO"))

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	staticRoot string
}

// NewMarotoReportGenerator construye el generador. staticRoot es la raíz de
// activos estáticos donde puede vivir images/logo.jpeg.
func NewMarotoReportGenerator(staticRoot string) *MarotoReportGenerator {
	return &MarotoReportGenerator{staticRoot: staticRoot}
}

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(rep *entity.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor("India Brava", true).
		Build()

	m := maroto.New(cfg)

	if logoPath := filepath.Join(g.staticRoot, "images", logoFile); fileExists(logoPath) {
		m.AddRows(image.NewFromFileRow(25, logoPath, props.Rect{Center: true, Percent: 60}))
	}

	m.AddRows(headerRows(rep)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, p := range rep.Products {
		m.AddRows(tableDetailRow(p))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(rep)...)
	m.AddRows(lowStockRows(rep)...)
	m.AddRows(statsRows(rep)...)
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(rep *entity.InventoryReport) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("India Brava - Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center, Color: colorPrimary,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Fecha de generación: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 12, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Nota: Este reporte muestra el estado actual del inventario", props.Text{
				Style: fontstyle.Italic, Size: 10, Align: align.Center, Color: colorGray,
			}),
		)),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1),
		h("U. Medida", 2),
		h("Cont. Neto", 1),
		h("Nombre", 2),
		h("Stock", 2),
		h("Precio Unit.", 2),
		h("Valor Total", 2),
	)
}

func tableDetailRow(p *entity.Product) core.Row {
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		}))
	}
	return row.New(7).Add(
		cell(fmt.Sprintf("%d", p.ID), 1),
		cell(p.UnitMeasure, 2),
		cell(fmt.Sprintf("%d", p.NetContent), 1),
		cell(p.Name, 2),
		cell(PluralizeUnits(p.Stock), 2),
		cell(FormatCurrency(p.Price), 2),
		cell(FormatCurrency(p.LineValue()), 2),
	)
}

func summaryRows(rep *entity.InventoryReport) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Resumen del Inventario", props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 2, Color: colorPrimary,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Total de productos: %d", rep.TotalProducts), props.Text{Size: 12}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Valor total del inventario: "+FormatCurrency(rep.TotalValue), props.Text{Size: 12}),
		)),
	}
}

func lowStockRows(rep *entity.InventoryReport) []core.Row {
	if len(rep.LowStock) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Productos con Stock Crítico (menos de 15 unidades)", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2, Color: colorPrimary,
			}),
		)),
	}
	for _, p := range rep.LowStock {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("• %s: %s", p.Name, PluralizeUnits(p.Stock)), props.Text{Size: 12}),
		)))
	}
	return rows
}

func statsRows(rep *entity.InventoryReport) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Estadísticas de Stock", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2, Color: colorPrimary,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Producto con mayor stock: %s (%s)",
				rep.MaxStock.Name, PluralizeUnits(rep.MaxStock.Stock)), props.Text{Size: 12}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Producto con menor stock: %s (%s)",
				rep.MinStock.Name, PluralizeUnits(rep.MinStock.Stock)), props.Text{Size: 12}),
		)),
	}
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Este reporte representa el estado del inventario al momento de su generación.", props.Text{
			Style: fontstyle.Italic, Size: 10, Align: align.Center, Color: colorGray, Top: 4,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatCurrency formatea un monto como moneda con la convención es-CO:
// "$1.234,50".
func FormatCurrency(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// PluralizeUnits devuelve el stock como frase: "1 unidad" / "N unidades".
func PluralizeUnits(stock int) string {
	if stock == 1 {
		return "1 unidad"
	}
	return fmt.Sprintf("%d unidades", stock)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
