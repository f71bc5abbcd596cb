package handlers

import (
	"encoding/json"
	"net/http"

	"stocktake/internal/config"
	"stocktake/internal/middleware"
	"stocktake/internal/model"
	"stocktake/internal/service"

	"go.uber.org/zap"
)

// ItemHandler обрабатывает карточки товаров.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

type createItemRequest struct {
	Name                 string   `json:"name"`
	UPCNumber            *string  `json:"upc_number,omitempty"`
	AverageWeightPerUnit *float64 `json:"average_weight_per_unit,omitempty"`
	UnitType             string   `json:"unit_type"`
	ItemType             *string  `json:"item_type,omitempty"`
	Brand                *string  `json:"brand,omitempty"`
}

// List отдаёт товары пользователя: весь список при all=true, иначе страницу.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if r.URL.Query().Get("all") == "true" {
		items, err := h.ItemService.ListAll(r.Context(), userID)
		if err != nil {
			h.Logger.Errorw("List items: service error", "user_id", userID, "error", err)
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	page, limit := parsePageLimit(r, h.Config.DefaultPageSize)
	items, total, err := h.ItemService.ListPage(r.Context(), userID, page, limit)
	if err != nil {
		h.Logger.Errorw("List items: service error", "user_id", userID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PageResponse{
		Data:       items,
		Pagination: newPagination(page, limit, total),
	})
}

// Create заводит новую карточку товара.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create item: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.UnitType == "" {
		writeMessage(w, http.StatusBadRequest, "unit_type is required")
		return
	}
	if !model.ValidUnitType(req.UnitType) {
		writeMessage(w, http.StatusBadRequest, "unknown unit_type: "+req.UnitType)
		return
	}
	// средний вес имеет смысл только для весового товара
	if req.UnitType == model.UnitQuantity {
		req.AverageWeightPerUnit = nil
	}

	item, err := h.ItemService.Create(r.Context(), userID, &model.Item{
		Name:                 req.Name,
		UPCNumber:            req.UPCNumber,
		AverageWeightPerUnit: req.AverageWeightPerUnit,
		UnitType:             req.UnitType,
		ItemType:             req.ItemType,
		Brand:                req.Brand,
	})
	if err != nil {
		h.Logger.Errorw("Create item: service error", "user_id", userID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}
