package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgalvez/almacen-api/internal/application/inventory"
	"github.com/lgalvez/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	UnitUC      *usecase.UnitOfMeasureUseCase
	PrimaryUC   *usecase.PrimaryWarehouseUseCase
	SecondaryUC *usecase.SecondaryWarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	StockUC     *usecase.StockUseCase
	LowStockUC  *inventory.LowStockUseCase
}

// Router registra las rutas de la API. Las rutas fijas de cada grupo (activos,
// stock-bajo, ...) se registran antes que /:id.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")
	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API funcionando correctamente"})
	})

	// Unidades de medida
	medidas := api.Group("/medidas")
	unitHandler := NewUnitOfMeasureHandler(deps.UnitUC)
	medidas.Post("/", unitHandler.Create)
	medidas.Get("/", unitHandler.List)
	medidas.Get("/tipo/:tipo", unitHandler.ListByCategory)
	medidas.Get("/:id", unitHandler.GetByID)
	medidas.Put("/:id", unitHandler.Update)
	medidas.Delete("/:id", unitHandler.Delete)

	// Almacenes principales
	primaries := api.Group("/almacenes-principal")
	primaryHandler := NewPrimaryWarehouseHandler(deps.PrimaryUC)
	primaries.Post("/", primaryHandler.Create)
	primaries.Get("/", primaryHandler.List)
	primaries.Get("/activos", primaryHandler.ListActive)
	primaries.Get("/:id", primaryHandler.GetByID)
	primaries.Put("/:id", primaryHandler.Update)
	primaries.Delete("/:id", primaryHandler.Delete)

	// Almacenes secundarios
	secondaries := api.Group("/almacenes-secundario")
	secondaryHandler := NewSecondaryWarehouseHandler(deps.SecondaryUC)
	secondaries.Post("/", secondaryHandler.Create)
	secondaries.Get("/", secondaryHandler.List)
	secondaries.Get("/activos", secondaryHandler.ListActive)
	secondaries.Get("/principal/:almacen_principal_id", secondaryHandler.ListByParent)
	secondaries.Get("/:id", secondaryHandler.GetByID)
	secondaries.Put("/:id", secondaryHandler.Update)
	secondaries.Delete("/:id", secondaryHandler.Delete)

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/activos", productHandler.ListActive)
	products.Get("/categoria/:categoria", productHandler.ListByCategory)
	products.Get("/codigo/:codigo", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.LowStockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/stock-bajo", stockHandler.ListLowStock)
	stock.Get("/stock-bajo/pdf", stockHandler.LowStockPDF)
	stock.Get("/producto/:producto_id", stockHandler.ListByProduct)
	stock.Get("/almacen-principal/:almacen_principal_id", stockHandler.ListByPrimaryWarehouse)
	stock.Get("/almacen-secundario/:almacen_secundario_id", stockHandler.ListBySecondaryWarehouse)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)
}
