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

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/bulk", h.CreateBulk)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles listing categories with pagination
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
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

	respondResult(w, h.categoryService.List(r.Context(), page, limit))
}

// GetByID handles fetching a single category
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "Category id must be a positive number")
		return
	}

	respondResult(w, h.categoryService.GetByID(r.Context(), id))
}

// Create handles creating a single category
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("Category decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, h.categoryService.Create(r.Context(), input))
}

// CreateBulk handles creating many categories at once. The body is a
// JSON array; the batch is all-or-nothing.
func (h *CategoryHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var inputs []service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		h.logger.Debug("Category bulk decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Categories must be a non-empty array")
		return
	}

	respondResult(w, h.categoryService.CreateBulk(r.Context(), inputs))
}

// Update handles updating a category
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "Category id must be a positive number")
		return
	}

	var input service.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("Category decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondResult(w, h.categoryService.Update(r.Context(), id, input))
}

// Delete handles deleting a category
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "Category id must be a positive number")
		return
	}

	respondResult(w, h.categoryService.Delete(r.Context(), id))
}
