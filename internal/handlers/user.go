package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"stocktake/internal/config"
	"stocktake/internal/middleware"
	"stocktake/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер user
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register регистрация нового пользователя, сразу ставит auth cookie
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "password is required")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeMessage(w, http.StatusConflict, "email already taken")
			return
		}
		h.Logger.Errorw("Register: service error", "email", req.Email, "error", err)
		internalError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to set cookie", "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Login вход по email и паролю, ставит auth cookie
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "email", req.Email, "error", err)
		internalError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
