package usecase

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/losmayitos/appstore-api/internal/application/dto"
	"github.com/losmayitos/appstore-api/internal/domain"
	"github.com/losmayitos/appstore-api/internal/domain/entity"
	"github.com/losmayitos/appstore-api/internal/domain/repository"
)

// ProductsPerPage tamaño fijo de página del listado.
const ProductsPerPage = 10

// allowedImageTypes formatos de imagen aceptados al crear un producto.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ProductUseCase casos de uso CRUD del producto, incluido el ciclo de vida de
// su imagen en disco.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ImageStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// List devuelve la página pedida (1-based, 10 por página) con el total de
// páginas. Una página fuera de rango devuelve una lista vacía, no un error.
func (uc *ProductUseCase) List(page int) (*dto.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	totalPages := (total + ProductsPerPage - 1) / ProductsPerPage
	items, err := uc.repo.List(ProductsPerPage, (page-1)*ProductsPerPage)
	if err != nil {
		return nil, err
	}
	return &dto.ProductPage{Items: items, Pagina: page, TotalPaginas: totalPages}, nil
}

// ListAll devuelve el inventario completo sin paginar.
func (uc *ProductUseCase) ListAll() ([]*entity.Product, error) {
	return uc.repo.ListAll()
}

// Create valida el formulario, guarda la imagen (o asigna el sentinel) y
// persiste el producto. El ID asignado queda disponible en el retorno.
func (uc *ProductUseCase) Create(form dto.ProductForm, file *multipart.FileHeader) (*entity.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	imagePath := entity.DefaultImagePath
	if file != nil && file.Size > 0 {
		if !allowedImageTypes[file.Header.Get("Content-Type")] {
			return nil, domain.ErrInvalidImageFormat
		}
		path, err := uc.saveUpload(file)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	product := &entity.Product{
		Name:        form.Name,
		UnitMeasure: form.UnitMeasure,
		NetContent:  form.NetContent,
		Price:       form.Price,
		Stock:       form.Stock,
		ImagePath:   imagePath,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto, o domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id int) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update sobrescribe siempre los cinco campos escalares con lo recibido. Si
// llega un archivo nuevo borra la imagen anterior (salvo el sentinel) y
// guarda la nueva; sin archivo la imagen actual queda intacta.
func (uc *ProductUseCase) Update(id int, form dto.ProductForm, file *multipart.FileHeader) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = form.Name
	product.UnitMeasure = form.UnitMeasure
	product.NetContent = form.NetContent
	product.Price = form.Price
	product.Stock = form.Stock

	if file != nil && file.Size > 0 {
		uc.removeImageIfOwned(product)
		path, err := uc.saveUpload(file)
		if err != nil {
			return nil, err
		}
		product.ImagePath = path
	}

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina el producto y su imagen en disco (nunca el sentinel).
func (uc *ProductUseCase) Delete(id int) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	uc.removeImageIfOwned(product)
	return uc.repo.Delete(id)
}

// NextID devuelve el siguiente ID sugerido: 1 con la tabla vacía, si no
// max(id)+1. Es solo informativo: dos llamadas sin insert de por medio
// devuelven el mismo valor y el insert asigna el ID definitivo.
func (uc *ProductUseCase) NextID() (int, error) {
	max, err := uc.repo.MaxID()
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (uc *ProductUseCase) saveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()
	return uc.images.Save(file.Filename, src)
}

// removeImageIfOwned borra del disco la imagen del producto salvo que sea el
// sentinel. Un fallo al borrar no interrumpe la operación principal.
func (uc *ProductUseCase) removeImageIfOwned(product *entity.Product) {
	if product.HasDefaultImage() || strings.Contains(product.ImagePath, "noDisponible.jpg") {
		return
	}
	_ = uc.images.Remove(product.ImagePath)
}
