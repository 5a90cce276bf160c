package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/costing"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/production"
)

// RouterDeps holds the use cases the router wires to handlers.
type RouterDeps struct {
	ConsumeUC    *inventory.ConsumeUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	ReceiveUC    *inventory.ReceiveUseCase
	StockUC      *inventory.StockUseCase
	CostingUC    *costing.UseCase
	ProductionUC *production.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ConsumeUC, deps.AdjustmentUC, deps.ReceiveUC, deps.StockUC)
	inv.Post("/consume", inventoryHandler.Consume)
	inv.Post("/adjustments", inventoryHandler.Adjust)
	inv.Post("/receipts", inventoryHandler.Receive)
	inv.Get("/ingredients/:slug/lots", inventoryHandler.IngredientStock)
	inv.Get("/lots/:id/depletions", inventoryHandler.LotDepletions)

	recipes := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.CostingUC, deps.ProductionUC)
	recipes.Get("/:id/actual-cost", recipeHandler.ActualCost)
	recipes.Get("/:id/estimated-cost", recipeHandler.EstimatedCost)
	recipes.Post("/:id/can-produce", recipeHandler.CanProduce)
	recipes.Post("/:id/produce", recipeHandler.Produce)
}
