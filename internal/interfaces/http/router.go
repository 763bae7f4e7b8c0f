package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/activity"
	"github.com/jhoicas/atelier-api/internal/application/catalog"
	"github.com/jhoicas/atelier-api/internal/application/revenue"
	"github.com/jhoicas/atelier-api/internal/application/stock"
	"github.com/jhoicas/atelier-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	CatalogUC  *catalog.ModelUseCase
	ActivityUC *activity.ActivityUseCase
	StockUC    *stock.MovementUseCase
	RevenueUC  *revenue.RevenueUseCase
	Storage    string
	Pinger     Pinger
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas están abiertas a todos los roles;
// las escrituras a admin y artisan.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.Storage, deps.Pinger)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	read := RequireRole(jwt.RoleAdmin, jwt.RoleArtisan, jwt.RoleViewer)
	write := RequireRole(jwt.RoleAdmin, jwt.RoleArtisan)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockUC)
	products := api.Group("/products")
	products.Get("/", read, productHandler.List)
	products.Post("/", write, productHandler.Create)
	products.Get("/:id", read, productHandler.GetByID)
	products.Patch("/:id", write, productHandler.Update)
	products.Get("/:id/stock-movements", read, stockHandler.ListByProduct)

	// Catálogo: modelos y coloris
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	models := api.Group("/product-models")
	models.Get("/", read, catalogHandler.ListModels)
	models.Post("/", write, catalogHandler.CreateModel)
	models.Get("/:id", read, catalogHandler.GetModel)
	models.Patch("/:id", write, catalogHandler.UpdateModel)
	models.Get("/:id/coloris", read, catalogHandler.ListColoris)
	models.Post("/:id/coloris", write, catalogHandler.CreateColoris)
	api.Patch("/product-coloris/:id", write, catalogHandler.UpdateColoris)

	// Activities
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities := api.Group("/activities")
	activities.Get("/", read, activityHandler.List)
	activities.Post("/", write, activityHandler.Create)
	activities.Get("/:id", read, activityHandler.GetByID)
	activities.Patch("/:id", write, activityHandler.Update)

	// Stock movements
	movements := api.Group("/stock-movements")
	movements.Get("/", read, stockHandler.List)
	movements.Post("/", write, stockHandler.RegisterMovement)

	// Reports
	reportHandler := NewReportHandler(deps.RevenueUC)
	reports := api.Group("/reports")
	reports.Get("/revenue", read, reportHandler.Revenue)
	reports.Get("/revenue/pdf", read, reportHandler.RevenuePDF)
}
