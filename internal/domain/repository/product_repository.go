package repository

import "github.com/losmayitos/appstore-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe; Create asigna el
// ID generado por el almacén sobre la entidad recibida.
type ProductRepository interface {
	Count() (int, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	GetByID(id int) (*entity.Product, error)
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id int) error
	// MaxID devuelve el mayor ID asignado, o 0 si la tabla está vacía.
	// Es solo informativo: el ID real siempre lo asigna el insert.
	MaxID() (int, error)
}
