package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
)

// InventoryHandler handles stock-level HTTP requests: FIFO consumption,
// manual adjustments and stock receipts.
type InventoryHandler struct {
	consume *inventory.ConsumeUseCase
	adjust  *inventory.AdjustmentUseCase
	receive *inventory.ReceiveUseCase
	stock   *inventory.StockUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(
	consume *inventory.ConsumeUseCase,
	adjust *inventory.AdjustmentUseCase,
	receive *inventory.ReceiveUseCase,
	stock *inventory.StockUseCase,
) *InventoryHandler {
	return &InventoryHandler{consume: consume, adjust: adjust, receive: receive, stock: stock}
}

// Consume runs a FIFO consumption for one ingredient. With dry_run the
// response shows what would happen without touching any lot.
//
// POST /api/inventory/consume
func (h *InventoryHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	res, err := h.consume.ConsumeFIFO(c.Context(), in.IngredientSlug, in.QuantityNeeded, in.DryRun)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Adjust depletes a named lot outside the recipe flow (spoilage, gift,
// correction, ad hoc use) and returns the audit record.
//
// POST /api/inventory/adjustments
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	res, err := h.adjust.ManualAdjustment(c.Context(), in.InventoryItemID, in.QuantityToDeplete, in.Reason, in.Notes)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Receive records a purchase and its resulting inventory lot.
//
// POST /api/inventory/receipts
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	lot, err := h.receive.ReceiveStock(c.Context(), inventory.ReceiveStockInput{
		VariantID:      in.VariantID,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		PurchaseDate:   in.PurchaseDate,
		Supplier:       in.Supplier,
		Location:       in.Location,
		ExpirationDate: in.ExpirationDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReceiveStockResult{
		LotID:           lot.ID,
		VariantID:       lot.VariantID,
		PurchaseID:      lot.PurchaseID,
		Quantity:        lot.Quantity,
		AcquisitionDate: lot.AcquisitionDate,
		ExpirationDate:  lot.ExpirationDate,
		Location:        lot.Location,
	})
}

// IngredientStock lists an ingredient's open lots and on-hand total.
//
// GET /api/inventory/ingredients/:slug/lots
func (h *InventoryHandler) IngredientStock(c *fiber.Ctx) error {
	res, err := h.stock.IngredientStock(c.Context(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// LotDepletions returns a lot's manual depletion history.
//
// GET /api/inventory/lots/:id/depletions
func (h *InventoryHandler) LotDepletions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	records, err := h.stock.LotDepletions(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(records)
}
