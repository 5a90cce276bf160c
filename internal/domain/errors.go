package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrVariantNotFound    = errors.New("variant not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrDuplicate          = errors.New("duplicate resource")
)

// UnitConversionError signals a conversion the resolver cannot perform:
// an unrecognized unit, or a cross-class conversion for an ingredient with
// no density data. It always aborts the enclosing operation; a silent 1:1
// fallback would corrupt costing.
type UnitConversionError struct {
	Ingredient string
	FromUnit   string
	ToUnit     string
	Reason     string
}

func (e *UnitConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %q for ingredient %q: %s",
		e.FromUnit, e.ToUnit, e.Ingredient, e.Reason)
}

// ValidationError signals bad input: non-positive quantities, missing
// required notes, depleting more than is on hand, missing pricing data.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
