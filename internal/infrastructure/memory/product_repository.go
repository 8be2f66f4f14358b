// Package memory implementa ProductRepository en memoria. Se usa en los
// tests de casos de uso y handlers; respeta el contrato del puerto, incluido
// el orden de inserción en los listados y la asignación de ID al crear.
package memory

import (
	"sort"
	"sync"

	"github.com/losmayitos/appstore-api/internal/domain/entity"
	"github.com/losmayitos/appstore-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos respaldado por un mapa.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[int]entity.Product
	nextID   int
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[int]entity.Product), nextID: 1}
}

// Count cuenta los productos registrados.
func (r *ProductRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// List devuelve una página en orden de inserción (id ascendente).
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all, _ := r.ListAll()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// ListAll devuelve todos los productos en orden de inserción.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		copia := p
		list = append(list, &copia)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Create asigna el siguiente ID y guarda el producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update sobrescribe el producto guardado.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

// Delete elimina el producto si existe.
func (r *ProductRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

// MaxID devuelve el mayor ID asignado, o 0 si está vacío.
func (r *ProductRepo) MaxID() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	max := 0
	for id := range r.products {
		if id > max {
			max = id
		}
	}
	return max, nil
}
