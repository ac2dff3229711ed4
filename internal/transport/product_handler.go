package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/bulk", h.CreateBulk)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles listing products with pagination, category filtering and
// name search
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
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

	var categoryID *int64
	if value := r.URL.Query().Get("category_id"); value != "" {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id < 1 {
			respondInvalidParam(w, "category_id")
			return
		}
		categoryID = &id
	}

	search := r.URL.Query().Get("search")

	respondResult(w, h.productService.List(r.Context(), page, limit, categoryID, search))
}

// GetByID handles fetching a single product
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.productService.GetByID(r.Context(), chi.URLParam(r, "id")))
}

// Create handles creating a single product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("Product decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, h.productService.Create(r.Context(), input))
}

// CreateBulk handles creating many products at once. The body is a JSON
// array; the batch is all-or-nothing.
func (h *ProductHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var inputs []service.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		h.logger.Debug("Product bulk decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Products must be a non-empty array")
		return
	}

	respondResult(w, h.productService.CreateBulk(r.Context(), inputs))
}

// Update handles updating a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("Product decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, h.productService.Update(r.Context(), chi.URLParam(r, "id"), input))
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	respondResult(w, h.productService.Delete(r.Context(), chi.URLParam(r, "id")))
}
