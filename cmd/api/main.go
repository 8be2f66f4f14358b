package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/losmayitos/appstore-api/internal/application/report"
	"github.com/losmayitos/appstore-api/internal/application/usecase"
	infrapdf "github.com/losmayitos/appstore-api/internal/infrastructure/pdf"
	"github.com/losmayitos/appstore-api/internal/infrastructure/postgres"
	"github.com/losmayitos/appstore-api/internal/infrastructure/storage"
	httpRouter "github.com/losmayitos/appstore-api/internal/interfaces/http"
	"github.com/losmayitos/appstore-api/pkg/config"
	"github.com/losmayitos/appstore-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	imageStore := storage.NewLocalImageStore(cfg.Static.Root)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.Static.Root)

	productUC := usecase.NewProductUseCase(productRepo, imageStore)
	reportUC := report.NewUseCase(productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// el cliente limita las imágenes a 5MB; margen para el framing multipart
		BodyLimit: 6 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AppStore API",
	}))

	// Imágenes subidas y sentinel noDisponible.jpg
	app.Static("/images", filepath.Join(cfg.Static.Root, "images"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		ReportUC:  reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
