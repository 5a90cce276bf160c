package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/costing"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/production"
)

// RecipeHandler handles recipe-scoped HTTP requests: costing, feasibility
// checks and batch production.
type RecipeHandler struct {
	costing    *costing.UseCase
	production *production.UseCase
}

// NewRecipeHandler builds the handler.
func NewRecipeHandler(costingUC *costing.UseCase, productionUC *production.UseCase) *RecipeHandler {
	return &RecipeHandler{costing: costingUC, production: productionUC}
}

// ActualCost prices one batch against current stock, FIFO-valued, with the
// market price covering any shortfall.
//
// GET /api/recipes/:id/actual-cost
func (h *RecipeHandler) ActualCost(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	cost, err := h.costing.CalculateActualCost(c.Context(), recipeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RecipeCostResponse{RecipeID: recipeID, Cost: cost})
}

// EstimatedCost prices one batch at market prices, ignoring stock.
//
// GET /api/recipes/:id/estimated-cost
func (h *RecipeHandler) EstimatedCost(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	cost, err := h.costing.CalculateEstimatedCost(c.Context(), recipeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RecipeCostResponse{RecipeID: recipeID, Cost: cost})
}

// CanProduce reports whether stock covers the scaled recipe and lists the
// lines it cannot satisfy. Pure read.
//
// POST /api/recipes/:id/can-produce
func (h *RecipeHandler) CanProduce(c *fiber.Ctx) error {
	var in dto.CanProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	res, err := h.production.CheckCanProduce(c.Context(), c.Params("id"), in.NumBatches)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Produce records a batch production run: consumes every ingredient FIFO in
// one transaction and returns the run with its consumption ledger.
//
// POST /api/recipes/:id/produce
func (h *RecipeHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	res, err := h.production.RecordBatchProduction(c.Context(), c.Params("id"), in.FinishedUnitID, in.NumBatches)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
