package handlers

import (
	"stocktake/internal/config"
	"stocktake/internal/middleware"
	"stocktake/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	inventoryService *service.InventoryService,
	transferService *service.TransferService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(itemService, logger, config)
	inventoryHandler := NewInventoryHandler(inventoryService, logger, config)
	adminHandler := NewAdminHandler(userService, transferService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Item routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)

	// Inventory routes
	r.Get("/api/inventories", inventoryHandler.List)
	r.Post("/api/inventories", inventoryHandler.Create)
	r.Post("/api/inventories/{id}/entries", inventoryHandler.AddEntry)
	r.Get("/api/inventories/{id}/entries", inventoryHandler.ListEntries)

	// Admin routes
	r.Get("/api/users", adminHandler.ListUsers)
	r.Patch("/api/admin/users/{id}/role", adminHandler.UpdateRole)
	r.Post("/api/admin/transfer-items", adminHandler.TransferItems)

	return &Handler{Router: r}
}
