package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
)

// writeError maps domain errors onto HTTP responses. Validation problems are
// 400, unknown entities 404, unit conversion failures 422 (the request was
// well-formed but the catalog cannot satisfy it), anything else 500.
func writeError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
	}

	var convErr *domain.UnitConversionError
	if errors.As(err, &convErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNIT_CONVERSION", Message: convErr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrVariantNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
