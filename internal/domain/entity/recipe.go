package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredient is one line of a recipe: a quantity of an ingredient in
// any unit the conversion resolver can map to the ingredient's recipe unit.
type RecipeIngredient struct {
	RecipeID       string
	IngredientSlug string
	Quantity       decimal.Decimal
	Unit           string
}

// Recipe describes how one batch of a finished good is made.
// ExpectedYield is the number of finished units one batch produces.
type Recipe struct {
	ID            string
	Name          string
	ExpectedYield decimal.Decimal
	Ingredients   []RecipeIngredient
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
