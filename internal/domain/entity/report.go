package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral de stock crítico del reporte.
const LowStockThreshold = 15

// InventoryReport datos agregados del reporte de inventario que consume el
// generador de PDF.
type InventoryReport struct {
	GeneratedAt   time.Time
	StartDate     time.Time
	EndDate       time.Time
	Products      []*Product
	TotalValue    decimal.Decimal // Σ(precio × stock)
	TotalProducts int
	LowStock      []*Product // stock < LowStockThreshold
	MaxStock      *Product   // empate: gana el primero en orden de almacén
	MinStock      *Product
	AverageStock  float64
}
