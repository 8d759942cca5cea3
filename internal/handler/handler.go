package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/GoArmGo/SalesTrack/internal/usecase"
)

// Handler — обработчик HTTP-запросов бэкенда учета продаж.
type Handler struct {
	authUseCase      usecase.AuthUseCase
	inventoryUseCase usecase.InventoryUseCase
	dashboardUseCase usecase.DashboardUseCase
	fileStorage      ports.FileStorage
	baseURL          string
	logger           *slog.Logger
}

// NewHandler создаёт новый экземпляр Handler.
func NewHandler(
	authUC usecase.AuthUseCase,
	inventoryUC usecase.InventoryUseCase,
	dashboardUC usecase.DashboardUseCase,
	fileStorage ports.FileStorage,
	baseURL string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authUseCase:      authUC,
		inventoryUseCase: inventoryUC,
		dashboardUseCase: dashboardUC,
		fileStorage:      fileStorage,
		baseURL:          baseURL,
		logger:           logger,
	}
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register — регистрирует нового пользователя.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "username, email and password are required", h.logger)
		return
	}

	user, err := h.authUseCase.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			respondWithError(w, http.StatusBadRequest, domain.ErrDuplicateUsername.Error(), h.logger)
			return
		}
		h.logger.Error("failed to register user", "username", req.Username, "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to register user", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login — проверяет учетные данные и возвращает bearer-токен.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	token, err := h.authUseCase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// форма ответа одинакова для неизвестного имени и неверного пароля
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondWithError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error(), h.logger)
			return
		}
		h.logger.Error("login failed", "username", req.Username, "error", err)
		respondWithError(w, http.StatusInternalServerError, "login failed", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	}, h.logger)
}

// ListUsers — возвращает всех пользователей (без хэшей паролей).
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authUseCase.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to list users", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, users, h.logger)
}
