package transport

import (
	"encoding/json"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SaleHandler handles HTTP requests for sale operations
type SaleHandler struct {
	saleService service.SaleService
	logger      *zap.Logger
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService service.SaleService, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles listing sales with pagination, newest first
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, valid := positiveQueryParam(r, "page", service.DefaultPage)
	if !valid {
		respondInvalidParam(w, "page")
		return
	}
	limit, valid := positiveQueryParam(r, "limit", service.DefaultLimit)
	if !valid {
		respondInvalidParam(w, "limit")
		return
	}

	respondResult(w, h.saleService.List(r.Context(), page, limit))
}

// GetByID handles fetching a single sale
func (h *SaleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.saleService.GetByID(r.Context(), chi.URLParam(r, "id")))
}

// Create handles creating a single sale
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.SaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("Sale decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, h.saleService.Create(r.Context(), input))
}

// Update handles updating a sale
func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.SaleUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("Sale decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, h.saleService.Update(r.Context(), chi.URLParam(r, "id"), input))
}

// Delete handles deleting a sale
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.saleService.Delete(r.Context(), chi.URLParam(r, "id")))
}
