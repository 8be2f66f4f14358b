package entity

import "github.com/shopspring/decimal"

// DefaultImagePath es la imagen de respaldo que se asigna cuando el producto
// se crea sin archivo. Nunca se elimina del disco.
const DefaultImagePath = "/images/noDisponible.jpg"

// Product representa un producto del inventario de la tienda.
// El ID lo asigna la base de datos al insertar; ImagePath siempre apunta a un
// archivo bajo la raíz estática o al sentinel DefaultImagePath.
type Product struct {
	ID          int
	Name        string
	UnitMeasure string
	NetContent  int
	Price       decimal.Decimal
	Stock       int
	ImagePath   string
}

// LineValue devuelve el valor de la línea (precio × stock).
func (p *Product) LineValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// HasDefaultImage indica si el producto usa la imagen sentinel.
func (p *Product) HasDefaultImage() bool {
	return p.ImagePath == "" || p.ImagePath == DefaultImagePath
}
