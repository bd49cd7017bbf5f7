package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/serviteca-pro/internal/application/catalog"
	"github.com/tu-usuario/serviteca-pro/internal/application/inventory"
	"github.com/tu-usuario/serviteca-pro/internal/application/returns"
	"github.com/tu-usuario/serviteca-pro/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.CatalogUseCase
	InventoryUC *inventory.InventoryUseCase
	SalesUC     *sales.SalesUseCase
	ReturnsUC   *returns.ReturnsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo: llantas, clientes, asesores, precios
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	tires := api.Group("/tires")
	tires.Post("/", catalogHandler.RegisterTire)
	tires.Post("/:id/price", catalogHandler.UpdatePrice)
	tires.Get("/:id/price-history", catalogHandler.PriceHistory)
	api.Post("/customers", catalogHandler.RegisterCustomer)
	api.Post("/advisors", catalogHandler.RegisterAdvisor)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory")
	inv.Post("/adjustments", inventoryHandler.Adjust)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/", inventoryHandler.Query)

	// Ventas
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", salesHandler.RecordSale)
	salesGroup.Get("/", salesHandler.ListSales)

	// Devoluciones
	returnsHandler := NewReturnsHandler(deps.ReturnsUC)
	returnsGroup := api.Group("/returns")
	returnsGroup.Post("/", returnsHandler.RecordReturn)
	returnsGroup.Get("/", returnsHandler.ListReturns)
}
