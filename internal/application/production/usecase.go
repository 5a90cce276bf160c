// Package production orchestrates multi-ingredient FIFO consumption for
// batch production runs. Every consumption of a run shares one transaction:
// a failure on any line leaves every lot at its pre-run quantity.
package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/dto"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/repository"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/units"
	"github.com/kentonium3/bake-tracker-sub006/pkg/logger"
)

// UseCase is the production service.
type UseCase struct {
	txRunner       inventory.TxRunner
	consume        *inventory.ConsumeUseCase
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	actor          string
	log            *logger.Logger
}

// New builds the production service. actor is recorded on production runs.
func New(
	txRunner inventory.TxRunner,
	consume *inventory.ConsumeUseCase,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	actor string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		consume:        consume,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		actor:          actor,
		log:            log,
	}
}

// CheckCanProduce dry-runs every ingredient line scaled by numBatches and
// reports the lines stock cannot fully satisfy. Pure read.
func (uc *UseCase) CheckCanProduce(ctx context.Context, recipeID string, numBatches int) (*dto.CanProduceResult, error) {
	recipe, err := uc.getRecipe(recipeID, numBatches)
	if err != nil {
		return nil, err
	}

	result := &dto.CanProduceResult{CanProduce: true, Missing: []dto.MissingIngredient{}}
	for _, line := range recipe.Ingredients {
		ing, needed, err := uc.scaledLine(uc.ingredientRepo, line, numBatches)
		if err != nil {
			return nil, err
		}
		res, err := uc.consume.ConsumeFIFO(ctx, line.IngredientSlug, needed, true)
		if err != nil {
			return nil, err
		}
		if res.Shortfall.IsPositive() {
			result.CanProduce = false
			result.Missing = append(result.Missing, dto.MissingIngredient{
				IngredientSlug: ing.Slug,
				IngredientName: ing.Name,
				Needed:         needed,
				Available:      res.Consumed,
				Unit:           ing.RecipeUnit,
			})
		}
	}
	return result, nil
}

// RecordBatchProduction consumes every ingredient line (scaled by
// numBatches) with committing FIFO consumption, writes one ConsumptionRecord
// per ingredient plus the ProductionRun row, and returns the full result.
// All of it happens in one transaction; any error rolls the whole run back.
// A line whose stock falls short is consumed as far as it goes and recorded
// at the consumed quantity. Whether partial production is acceptable is the
// caller's decision, made ahead of time via CheckCanProduce.
func (uc *UseCase) RecordBatchProduction(ctx context.Context, recipeID, finishedUnitID string, numBatches int) (*dto.ProductionResult, error) {
	recipe, err := uc.getRecipe(recipeID, numBatches)
	if err != nil {
		return nil, err
	}
	if !recipe.ExpectedYield.IsPositive() {
		return nil, domain.NewValidationError("expected_yield", "recipe yield must be positive")
	}

	runID := uuid.New().String()
	expectedYield := recipe.ExpectedYield.Mul(decimal.NewFromInt(int64(numBatches)))
	actualYield := expectedYield
	now := time.Now()

	var result *dto.ProductionResult
	err = uc.txRunner.Run(ctx, func(r inventory.TxRepos) error {
		totalCost := decimal.Zero
		consumptions := []dto.ConsumptionEntry{}

		for _, line := range recipe.Ingredients {
			ing, needed, err := uc.scaledLine(r.Ingredients, line, numBatches)
			if err != nil {
				return err
			}
			res, err := uc.consume.ConsumeInTx(r, line.IngredientSlug, needed, false)
			if err != nil {
				return err
			}
			if !res.Satisfied {
				uc.log.Warn().
					Str("run_id", runID).
					Str("ingredient", ing.Slug).
					Str("shortfall", res.Shortfall.String()).
					Msg("production line short on stock")
			}

			record := &entity.ConsumptionRecord{
				ID:              uuid.New().String(),
				ProductionRunID: runID,
				IngredientSlug:  ing.Slug,
				Quantity:        res.Consumed,
				Unit:            ing.RecipeUnit,
				TotalCost:       res.TotalCost,
				CreatedAt:       now,
			}
			if err := r.Productions.CreateConsumption(record); err != nil {
				return err
			}

			totalCost = totalCost.Add(res.TotalCost)
			consumptions = append(consumptions, dto.ConsumptionEntry{
				IngredientSlug:   record.IngredientSlug,
				QuantityConsumed: record.Quantity,
				Unit:             record.Unit,
				TotalCost:        record.TotalCost,
			})
		}

		run := &entity.ProductionRun{
			ID:                  runID,
			RecipeID:            recipe.ID,
			FinishedUnitID:      finishedUnitID,
			NumBatches:          numBatches,
			ExpectedYield:       expectedYield,
			ActualYield:         actualYield,
			TotalIngredientCost: totalCost,
			PerUnitCost:         totalCost.Div(actualYield),
			ProducedAt:          now,
			CreatedBy:           uc.actor,
		}
		if err := r.Productions.CreateRun(run); err != nil {
			return err
		}

		result = &dto.ProductionResult{
			ProductionRunID:     run.ID,
			RecipeID:            run.RecipeID,
			FinishedUnitID:      run.FinishedUnitID,
			NumBatches:          run.NumBatches,
			ExpectedYield:       run.ExpectedYield,
			ActualYield:         run.ActualYield,
			TotalIngredientCost: run.TotalIngredientCost,
			PerUnitCost:         run.PerUnitCost,
			Consumptions:        consumptions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("run_id", runID).
		Str("recipe_id", recipeID).
		Int("num_batches", numBatches).
		Str("total_cost", result.TotalIngredientCost.String()).
		Msg("batch production recorded")
	return result, nil
}

func (uc *UseCase) getRecipe(recipeID string, numBatches int) (*entity.Recipe, error) {
	if numBatches <= 0 {
		return nil, domain.NewValidationError("num_batches", "must be positive")
	}
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

// scaledLine resolves the line's ingredient and returns the quantity needed
// for numBatches batches, in the ingredient's recipe unit.
func (uc *UseCase) scaledLine(ingredientRepo repository.IngredientRepository, line entity.RecipeIngredient, numBatches int) (*entity.Ingredient, decimal.Decimal, error) {
	ing, err := ingredientRepo.GetBySlug(line.IngredientSlug)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	if ing == nil {
		return nil, decimal.Decimal{}, domain.ErrIngredientNotFound
	}
	perBatch, err := units.Convert(ing, line.Quantity, line.Unit, ing.RecipeUnit)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	return ing, perBatch.Mul(decimal.NewFromInt(int64(numBatches))), nil
}
