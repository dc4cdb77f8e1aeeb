package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/surtido-api/internal/application/export"
	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	LookupUC   *lookup.UseCase
	ListUC     *usecase.SupplierListUseCase
	ItemUC     *usecase.ListItemUseCase
	ExportUC   *export.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products: GET /api/products atiende búsqueda (sku= o name=) y listado
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LookupUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Lists y sus renglones
	lists := api.Group("/lists")
	listHandler := NewListHandler(deps.ListUC)
	lists.Post("/", listHandler.Create)
	lists.Get("/", listHandler.List)
	lists.Get("/:id", listHandler.GetByID)
	lists.Put("/:id", listHandler.Rename)
	lists.Delete("/:id", listHandler.Delete)

	itemHandler := NewItemHandler(deps.ItemUC)
	lists.Post("/:id/items", itemHandler.Create)
	lists.Get("/:id/items", itemHandler.ListByList)
	lists.Put("/:id/items/:itemId", itemHandler.Update)
	lists.Delete("/:id/items/:itemId", itemHandler.Delete)

	// Exportación PDF
	exportHandler := NewExportHandler(deps.ExportUC)
	lists.Get("/:id/export/pdf", exportHandler.ExportPDF)
}
