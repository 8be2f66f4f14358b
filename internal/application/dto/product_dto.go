package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/losmayitos/appstore-api/internal/domain"
	"github.com/losmayitos/appstore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductForm campos del formulario de crear/editar producto.
// Las reglas replican las data annotations del modelo original: nombre y
// unidad de medida obligatorios con tope 50/25, contenido neto y precio
// mayores a cero, stock no negativo.
type ProductForm struct {
	Name        string          `form:"Nombre" validate:"required,max=50"`
	UnitMeasure string          `form:"UnidadMedida" validate:"required,max=25"`
	NetContent  int             `form:"ContenidoNeto" validate:"required,gt=0"`
	Price       decimal.Decimal `form:"Precio" validate:"required,gt=0"`
	Stock       int             `form:"Stock" validate:"min=0"`
}

var validate = newValidator()

// newValidator registra el soporte para decimal.Decimal: validator compara
// el valor como float64 para las reglas numéricas (gt, min, ...).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// mensajes por campo y regla, tomados tal cual del modelo original.
var fieldMessages = map[string]map[string]string{
	"Name": {
		"required": "El nombre es obligatorio",
		"max":      "El nombre no puede exceder los 50 caracteres",
	},
	"UnitMeasure": {
		"required": "La unidad de medida es obligatoria",
		"max":      "La unidad de medida no puede exceder los 25 caracteres",
	},
	"NetContent": {
		"required": "El contenido neto es obligatorio",
		"gt":       "El contenido neto debe ser mayor a 0",
	},
	"Price": {
		"required": "El precio es obligatorio",
		"gt":       "El precio debe ser mayor a 0",
	},
	"Stock": {
		"min": "El stock no puede ser negativo",
	},
}

// Validate aplica las reglas y devuelve un *domain.ValidationError con los
// mensajes por campo, o nil si el formulario es válido.
func (f ProductForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fieldMessages[fe.StructField()][fe.Tag()]
		if msg == "" {
			msg = "Valor inválido para " + fe.StructField()
		}
		fields = append(fields, domain.FieldError{Field: fe.StructField(), Message: msg})
	}
	return &domain.ValidationError{Fields: fields}
}

// ProductResponse salida JSON de un producto. Las claves camelCase en español
// son las que consume el cliente de la tienda.
type ProductResponse struct {
	IDProducto    int             `json:"idProducto"`
	Nombre        string          `json:"nombre"`
	UnidadMedida  string          `json:"unidadMedida"`
	ContenidoNeto int             `json:"contenidoNeto"`
	Precio        decimal.Decimal `json:"precio"`
	Stock         int             `json:"stock"`
	Imagen        string          `json:"imagen"`
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		IDProducto:    p.ID,
		Nombre:        p.Name,
		UnidadMedida:  p.UnitMeasure,
		ContenidoNeto: p.NetContent,
		Precio:        p.Price,
		Stock:         p.Stock,
		Imagen:        p.ImagePath,
	}
}

// ProductPage página de productos con metadatos de paginación (1-based).
type ProductPage struct {
	Items        []*entity.Product
	Pagina       int
	TotalPaginas int
}

// ProductPageResponse respuesta JSON del listado paginado.
type ProductPageResponse struct {
	Success      bool              `json:"success"`
	Productos    []ProductResponse `json:"productos"`
	Pagina       int               `json:"pagina"`
	TotalPaginas int               `json:"totalPaginas"`
}

// ProductListResponse respuesta JSON del inventario completo.
type ProductListResponse struct {
	Success   bool              `json:"success"`
	Productos []ProductResponse `json:"productos"`
}

// ProductDetailResponse respuesta JSON de un producto individual.
type ProductDetailResponse struct {
	Success  bool             `json:"success"`
	Producto *ProductResponse `json:"producto"`
}

// ToProductResponses convierte la lista de entidades a DTOs de salida.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}
