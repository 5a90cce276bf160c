package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kentonium3/bake-tracker-sub006/internal/application/costing"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/inventory"
	"github.com/kentonium3/bake-tracker-sub006/internal/application/production"
	"github.com/kentonium3/bake-tracker-sub006/internal/infrastructure/postgres"
	httpRouter "github.com/kentonium3/bake-tracker-sub006/internal/interfaces/http"
	"github.com/kentonium3/bake-tracker-sub006/pkg/config"
	"github.com/kentonium3/bake-tracker-sub006/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	ingredientRepo := postgres.NewIngredientRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	depletionRepo := postgres.NewDepletionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	consumeUC := inventory.NewConsumeUseCase(txRunner, ingredientRepo, variantRepo, purchaseRepo, lotRepo)
	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner, cfg.App.Actor)
	receiveUC := inventory.NewReceiveUseCase(txRunner)
	stockUC := inventory.NewStockUseCase(ingredientRepo, variantRepo, lotRepo, depletionRepo)
	costingUC := costing.New(consumeUC, recipeRepo, ingredientRepo, variantRepo, purchaseRepo)
	productionUC := production.New(txRunner, consumeUC, recipeRepo, ingredientRepo, cfg.App.Actor, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConsumeUC:    consumeUC,
		AdjustmentUC: adjustmentUC,
		ReceiveUC:    receiveUC,
		StockUC:      stockUC,
		CostingUC:    costingUC,
		ProductionUC: productionUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
