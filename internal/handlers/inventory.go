package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"stocktake/internal/config"
	"stocktake/internal/middleware"
	"stocktake/internal/model"
	"stocktake/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryHandler обрабатывает сессии пересчёта и их строки.
type InventoryHandler struct {
	InventoryService *service.InventoryService
	Logger           *zap.SugaredLogger
	Config           *config.Config
}

// NewInventoryHandler создаёт хендлер inventories
func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.SugaredLogger, cfg *config.Config) *InventoryHandler {
	return &InventoryHandler{InventoryService: inventoryService, Logger: logger, Config: cfg}
}

type createInventoryRequest struct {
	Name     string         `json:"name"`
	Status   string         `json:"status,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

type addEntryRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

// List отдаёт страницу сессий пользователя.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	page, limit := parsePageLimit(r, h.Config.DefaultPageSize)
	invs, total, err := h.InventoryService.ListPage(r.Context(), userID, page, limit)
	if err != nil {
		h.Logger.Errorw("List inventories: service error", "user_id", userID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PageResponse{
		Data:       invs,
		Pagination: newPagination(page, limit, total),
	})
}

// Create заводит новую сессию пересчёта.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create inventory: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Status != "" && !model.ValidStatus(req.Status) {
		writeMessage(w, http.StatusBadRequest, "unknown status: "+req.Status)
		return
	}
	for k := range req.Settings {
		if _, ok := model.RecognizedSettingKeys[k]; !ok {
			writeMessage(w, http.StatusBadRequest, "unrecognized settings key: "+k)
			return
		}
	}

	inv, err := h.InventoryService.Create(r.Context(), userID, &model.Inventory{
		Name:     req.Name,
		Status:   req.Status,
		Settings: req.Settings,
	})
	if err != nil {
		h.Logger.Errorw("Create inventory: service error", "user_id", userID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// AddEntry добавляет товар в сессию пересчёта.
func (h *InventoryHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	inventoryID := chi.URLParam(r, "id")

	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add entry: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ItemID == "" {
		writeMessage(w, http.StatusBadRequest, "item_id is required")
		return
	}

	entry, err := h.InventoryService.AddEntry(r.Context(), userID, inventoryID, req.ItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeMessage(w, http.StatusNotFound, "not found")
			return
		}
		h.Logger.Errorw("Add entry: service error", "user_id", userID, "inventory_id", inventoryID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListEntries отдаёт строки сессии, упорядоченные для пересчёта.
// order=count (по умолчанию) или order=item_type.
func (h *InventoryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	inventoryID := chi.URLParam(r, "id")
	order := r.URL.Query().Get("order")
	if order == "" {
		order = service.OrderCountMode
	}
	if order != service.OrderCountMode && order != service.OrderItemType {
		writeMessage(w, http.StatusBadRequest, "unknown order: "+order)
		return
	}

	items, err := h.InventoryService.CountableItems(r.Context(), userID, inventoryID, order)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeMessage(w, http.StatusNotFound, "not found")
			return
		}
		h.Logger.Errorw("List entries: service error", "user_id", userID, "inventory_id", inventoryID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
