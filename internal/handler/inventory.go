package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ListProducts — возвращает товары аутентифицированного владельца.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	products, err := h.inventoryUseCase.ListProducts(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to list products", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to list products", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, products, h.logger)
}

type createProductRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ProductImage string  `json:"product_image"`
}

// CreateProduct — создает товар, принадлежащий вызывающему.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required", h.logger)
		return
	}

	// Загруженные изображения отдаются по /images/{name}: из имени файла
	// собираем абсолютный URL
	image := req.ProductImage
	if image != "" && !strings.HasPrefix(image, "http://") && !strings.HasPrefix(image, "https://") {
		image = fmt.Sprintf("%s/images/%s", h.baseURL, image)
	}

	product, err := h.inventoryUseCase.CreateProduct(r.Context(), user, req.Name, req.Price, req.Quantity, image)
	if err != nil {
		h.logger.Error("failed to create product", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to create product", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, product, h.logger)
}

// UpdateProduct — частично обновляет товар владельца: перезаписываются
// только поля, присутствующие в теле запроса.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	productID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}

	var update domain.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.inventoryUseCase.UpdateProduct(r.Context(), user, uint(productID), update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "product does not exist", h.logger)
			return
		}
		h.logger.Error("failed to update product", "product_id", productID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to update product", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, product, h.logger)
}

// ListSales — возвращает продажи аутентифицированного владельца.
func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	sales, err := h.inventoryUseCase.ListSales(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to list sales", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, sales, h.logger)
}

type createSaleRequest struct {
	Pid           uint       `json:"pid"`
	StockQuantity int        `json:"stock_quantity"`
	CreatedAt     *time.Time `json:"created_at"`
}

// CreateSale — фиксирует продажу; created_at по умолчанию — текущее
// серверное время.
func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	sale, err := h.inventoryUseCase.CreateSale(r.Context(), user, req.Pid, req.StockQuantity, req.CreatedAt)
	if err != nil {
		// и нарушение ссылочной целостности, и сбой хранилища
		// поднимаются как 422 с текстом ошибки
		respondWithError(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, sale, h.logger)
}
