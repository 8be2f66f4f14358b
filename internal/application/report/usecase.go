package report

import (
	"time"

	"github.com/losmayitos/appstore-api/internal/domain"
	"github.com/losmayitos/appstore-api/internal/domain/entity"
	"github.com/losmayitos/appstore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase genera el reporte de inventario en PDF.
type UseCase struct {
	repo repository.ProductRepository
	pdf  PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{repo: repo, pdf: pdf}
}

// Generate carga todo el inventario, calcula los agregados y delega el
// renderizado. Con inventario vacío falla con domain.ErrEmptyInventory.
func (uc *UseCase) Generate(start, end time.Time) ([]byte, error) {
	products, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	rep, err := BuildInventoryReport(products, start, end)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryPDF(rep)
}

// BuildInventoryReport calcula los agregados del reporte sobre los productos
// en orden de almacén: valor total Σ(precio × stock), lista de stock crítico
// (< entity.LowStockThreshold), producto de mayor y menor stock (los empates
// los gana el primero encontrado) y promedio aritmético de stock.
func BuildInventoryReport(products []*entity.Product, start, end time.Time) (*entity.InventoryReport, error) {
	if len(products) == 0 {
		return nil, domain.ErrEmptyInventory
	}

	rep := &entity.InventoryReport{
		GeneratedAt:   time.Now(),
		StartDate:     start,
		EndDate:       end,
		Products:      products,
		TotalValue:    decimal.Zero,
		TotalProducts: len(products),
		MaxStock:      products[0],
		MinStock:      products[0],
	}

	stockSum := 0
	for _, p := range products {
		rep.TotalValue = rep.TotalValue.Add(p.LineValue())
		stockSum += p.Stock
		if p.Stock < entity.LowStockThreshold {
			rep.LowStock = append(rep.LowStock, p)
		}
		if p.Stock > rep.MaxStock.Stock {
			rep.MaxStock = p
		}
		if p.Stock < rep.MinStock.Stock {
			rep.MinStock = p
		}
	}
	rep.AverageStock = float64(stockSum) / float64(len(products))

	return rep, nil
}
