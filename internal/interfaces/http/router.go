package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/losmayitos/appstore-api/internal/application/report"
	"github.com/losmayitos/appstore-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	ReportUC  *report.UseCase
}

// Router registra las rutas de la aplicación. Se conservan las rutas en
// español que consume el cliente de la tienda.
func Router(app *fiber.App, deps RouterDeps) {
	productHandler := NewProductHandler(deps.ProductUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	productos := app.Group("/Productos")
	productos.Get("/", productHandler.Index)
	productos.Post("/Crear", productHandler.Create)
	productos.Get("/ObtenerListaProductos", productHandler.GetAll)
	productos.Get("/ObtenerProducto", productHandler.GetOne)
	productos.Post("/Editar", productHandler.Update)
	productos.Post("/Eliminar", productHandler.Delete)
	productos.Get("/ObtenerSiguienteId", productHandler.NextID)
	productos.Post("/GenerarReporte", reportHandler.Generate)
}
