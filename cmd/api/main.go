// @title           Retail Stock API
// @version         1.0
// @description     Tiendas, productos y stock por tienda.
// @BasePath        /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/retail-stock-api/docs"
	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/backend"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/metrics"
	httpRouter "github.com/jhoicas/retail-stock-api/internal/interfaces/http"
	"github.com/jhoicas/retail-stock-api/pkg/config"
	"github.com/jhoicas/retail-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Inventory.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := backend.Open(ctx, cfg, log, backend.Options{Migrate: cfg.DB.MigrateOnStart})
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia")
	}
	defer store.Close()

	ledger := inventory.NewStockLedger(store.TxRunner)
	storeUC := usecase.NewStoreUseCase(store.TxRunner, ledger)
	productUC := usecase.NewProductUseCase(store.TxRunner, ledger, cfg.Inventory.EnforceUniqueSKU)
	maintenanceUC := usecase.NewMaintenanceUseCase(store.TxRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI: http://localhost:<port>/docs
	if cfg.HTTP.DocsPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Retail Stock API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:        storeUC,
		ProductUC:      productUC,
		Ledger:         ledger,
		MaintenanceUC:  maintenanceUC,
		Metrics:        metrics.New("retail"),
		Logger:         log,
		EnableDevReset: cfg.Inventory.EnableDevReset,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		StaticDir:      cfg.HTTP.StaticDir,
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
