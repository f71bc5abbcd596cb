package main

import (
	"net/http"

	"stocktake/internal/config"
	"stocktake/internal/handlers"
	"stocktake/internal/middleware"
	"stocktake/internal/repo"
	"stocktake/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	inventoryRepo := repo.NewInventoryRepository(gormDB)

	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, itemRepo)
	transferService := service.NewTransferService(itemRepo)

	h := handlers.NewHandler(userService, itemService, inventoryService, transferService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
