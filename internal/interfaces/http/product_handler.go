package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/losmayitos/appstore-api/internal/application/dto"
	"github.com/losmayitos/appstore-api/internal/application/usecase"
	"github.com/losmayitos/appstore-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Mensajes visibles para el cliente. El contrato de error es por payload:
// todas las respuestas mutadoras son 200 con {success, message}.
const (
	msgNotFound           = "Producto no encontrado"
	msgMissingFields      = "Por favor, complete todos los campos requeridos."
	msgInvalidImageFormat = "Formato de imagen no válido. Use JPG, PNG o GIF"
	msgNextIDError        = "Error al obtener el siguiente ID"
)

// ProductHandler maneja las peticiones HTTP del CRUD de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Index godoc
// @Summary      Listar productos paginados
// @Tags         productos
// @Produce      json
// @Param        pagina  query  int  false  "Página (1-based)"  default(1)
// @Success      200  {object}  dto.ProductPageResponse
// @Router       /Productos [get]
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	page, err := h.uc.List(c.QueryInt("pagina", 1))
	if err != nil {
		return c.JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.ProductPageResponse{
		Success:      true,
		Productos:    dto.ToProductResponses(page.Items),
		Pagina:       page.Pagina,
		TotalPaginas: page.TotalPaginas,
	})
}

// GetAll godoc
// @Summary      Listar el inventario completo
// @Tags         productos
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /Productos/ObtenerListaProductos [get]
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll()
	if err != nil {
		return c.JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.ProductListResponse{Success: true, Productos: dto.ToProductResponses(list)})
}

// Create godoc
// @Summary      Crear producto (multipart, imagen opcional en "file")
// @Tags         productos
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /Productos/Crear [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	form := parseProductForm(c)
	file, _ := c.FormFile("file")

	if _, err := h.uc.Create(form, file); err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.JSON(dto.StatusResponse{Success: false, Message: msgMissingFields, Errores: ve.Fields})
		}
		if errors.Is(err, domain.ErrInvalidImageFormat) {
			return c.JSON(dto.Fail(msgInvalidImageFormat))
		}
		return c.JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK())
}

// GetOne godoc
// @Summary      Obtener un producto por id
// @Tags         productos
// @Produce      json
// @Param        id  query  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Router       /Productos/ObtenerProducto [get]
func (h *ProductHandler) GetOne(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.QueryInt("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(dto.Fail(msgNotFound))
		}
		return c.JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.ProductDetailResponse{Success: true, Producto: dto.ToProductResponse(product)})
}

// Update godoc
// @Summary      Editar producto (multipart, imagen opcional en "file")
// @Tags         productos
// @Accept       mpfd
// @Produce      json
// @Param        id  query  int  true  "ID del producto"
// @Success      200  {object}  dto.StatusResponse
// @Router       /Productos/Editar [post]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	form := parseProductForm(c)
	file, _ := c.FormFile("file")

	if _, err := h.uc.Update(c.QueryInt("id"), form, file); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(dto.Fail(msgNotFound))
		}
		return c.JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK())
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Produce      json
// @Param        id  formData  int  true  "ID del producto"
// @Success      200  {object}  dto.StatusResponse
// @Router       /Productos/Eliminar [post]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	raw := c.FormValue("id")
	if raw == "" {
		raw = c.Query("id")
	}
	id, _ := strconv.Atoi(raw)

	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(dto.Fail(msgNotFound))
		}
		return c.JSON(dto.Fail("Error al eliminar el producto: " + err.Error()))
	}
	return c.JSON(dto.OK())
}

// NextID godoc
// @Summary      Siguiente ID sugerido (solo informativo)
// @Tags         productos
// @Produce      json
// @Success      200  {object}  dto.NextIDResponse
// @Router       /Productos/ObtenerSiguienteId [get]
func (h *ProductHandler) NextID(c *fiber.Ctx) error {
	next, err := h.uc.NextID()
	if err != nil {
		return c.JSON(dto.Fail(msgNextIDError))
	}
	return c.JSON(dto.NextIDResponse{Success: true, SiguienteID: next})
}

// parseProductForm lee los campos del formulario con los nombres que envía el
// cliente original. Valores no numéricos quedan en cero y los rechaza la
// validación del caso de uso.
func parseProductForm(c *fiber.Ctx) dto.ProductForm {
	netContent, _ := strconv.Atoi(c.FormValue("ContenidoNeto"))
	stock, _ := strconv.Atoi(c.FormValue("Stock"))
	price, _ := decimal.NewFromString(c.FormValue("Precio"))
	return dto.ProductForm{
		Name:        c.FormValue("Nombre"),
		UnitMeasure: c.FormValue("UnidadMedida"),
		NetContent:  netContent,
		Price:       price,
		Stock:       stock,
	}
}
