package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/retail-stock-api/internal/application/dto"
	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/metrics"
	"github.com/jhoicas/retail-stock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC        *usecase.StoreUseCase
	ProductUC      *usecase.ProductUseCase
	Ledger         *inventory.StockLedger
	MaintenanceUC  *usecase.MaintenanceUseCase
	Metrics        *metrics.Metrics // opcional
	Logger         *logger.Logger
	EnableDevReset bool
	CORSOrigins    string // vacío -> "*"
	StaticDir      string // vacío -> sin /static
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := deps.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log, deps.Metrics))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Retail API is running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{Status: "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
	if deps.StaticDir != "" {
		app.Static("/static", deps.StaticDir)
	}

	stores := app.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Delete("/:id", storeHandler.Delete)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	stock := app.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger, deps.Metrics)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Upsert)
	stock.Delete("/", stockHandler.Delete)

	// Limpieza (desarrollo/pruebas)
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	devOnly := RequireDevReset(deps.EnableDevReset)
	app.Post("/clear", devOnly, maintenanceHandler.Clear)
	app.Post("/dev/reset", devOnly, maintenanceHandler.Clear)
}
