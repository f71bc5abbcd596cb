package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"stocktake/internal/middleware"
	"stocktake/internal/model"
	"stocktake/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler обрабатывает администрирование: список пользователей,
// смену ролей и копирование товаров между учётками.
type AdminHandler struct {
	UserService     *service.UserService
	TransferService *service.TransferService
	Logger          *zap.SugaredLogger
}

// NewAdminHandler создаёт хендлер admin
func NewAdminHandler(userService *service.UserService, transferService *service.TransferService, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{UserService: userService, TransferService: transferService, Logger: logger}
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type transferRequest struct {
	SourceUserID int64 `json:"sourceUserId"`
	TargetUserID int64 `json:"targetUserId"`
}

type transferResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
	Skipped int64  `json:"skipped"`
	Total   int    `json:"total"`
}

// requireRole загружает вызывающего и проверяет его роль.
// Возвращает false, если ответ уже записан.
func (h *AdminHandler) requireRole(w http.ResponseWriter, r *http.Request, roles ...string) bool {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return false
	}

	caller, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return false
		}
		h.Logger.Errorw("requireRole: failed to load caller", "user_id", userID, "error", err)
		internalError(w, err)
		return false
	}

	for _, role := range roles {
		if caller.Role == role {
			return true
		}
	}
	writeMessage(w, http.StatusForbidden, "forbidden")
	return false
}

// ListUsers отдаёт всех пользователей, новые сверху. Доступно ADMIN и MANAGER.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, model.RoleAdmin, model.RoleManager) {
		return
	}

	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		h.Logger.Errorw("ListUsers: service error", "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// UpdateRole назначает пользователю новую роль. Доступно только ADMIN.
func (h *AdminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, model.RoleAdmin) {
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateRole: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Role == "" {
		writeMessage(w, http.StatusBadRequest, "role is required")
		return
	}
	if !model.ValidRole(req.Role) {
		writeMessage(w, http.StatusBadRequest, "unknown role: "+req.Role)
		return
	}

	user, err := h.UserService.UpdateRole(r.Context(), targetID, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Errorw("UpdateRole: service error", "target_id", targetID, "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// TransferItems копирует все товары одного пользователя другому.
// Доступно только ADMIN.
func (h *AdminHandler) TransferItems(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, model.RoleAdmin) {
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("TransferItems: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.SourceUserID == 0 || req.TargetUserID == 0 {
		writeMessage(w, http.StatusBadRequest, "sourceUserId and targetUserId are required")
		return
	}
	if req.SourceUserID == req.TargetUserID {
		writeMessage(w, http.StatusBadRequest, "sourceUserId and targetUserId must differ")
		return
	}

	report, err := h.TransferService.TransferItems(r.Context(), req.SourceUserID, req.TargetUserID)
	if err != nil {
		h.Logger.Errorw("TransferItems: service error",
			"source_id", req.SourceUserID, "target_id", req.TargetUserID, "error", err)
		internalError(w, err)
		return
	}

	resp := transferResponse{Count: report.Copied, Skipped: report.Skipped, Total: report.Total}
	switch {
	case report.Total == 0:
		resp.Message = "source user has no items to transfer"
	case report.Skipped > 0:
		resp.Message = fmt.Sprintf("copied %d of %d items, %d skipped because the target already has their UPC numbers",
			report.Copied, report.Total, report.Skipped)
	default:
		resp.Message = fmt.Sprintf("copied %d items", report.Copied)
	}
	writeJSON(w, http.StatusOK, resp)
}
