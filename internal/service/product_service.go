package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductInput is the payload for creating a product. Price uses a
// pointer so a zero price passes validation while a missing one fails.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Image       string   `json:"image"`
	CategoryID  *int64   `json:"category_id" validate:"omitempty,gte=1"`
	Description string   `json:"description"`
}

// ProductUpdate is the payload for updating a product. Only the
// provided fields are replaced.
type ProductUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	CategoryID  *int64   `json:"category_id" validate:"omitempty,gte=1"`
	Description *string  `json:"description"`
}

// ProductService defines the business operations on products
type ProductService interface {
	List(ctx context.Context, page, limit int, categoryID *int64, search string) Result[Page[*domain.Product]]
	GetByID(ctx context.Context, id string) Result[*domain.Product]
	Create(ctx context.Context, input ProductInput) Result[*domain.Product]
	CreateBulk(ctx context.Context, inputs []ProductInput) Result[[]*domain.Product]
	Update(ctx context.Context, id string, input ProductUpdate) Result[*domain.Product]
	Delete(ctx context.Context, id string) Result[uuid.UUID]
}

type productService struct {
	crudService[domain.Product, uuid.UUID]
	repo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{
		crudService: crudService[domain.Product, uuid.UUID]{store: repo, noun: "product", logger: logger},
		repo:        repo,
	}
}

// List returns one page of products, optionally filtered by category
// and by a case-insensitive substring match on the name
func (s *productService) List(ctx context.Context, page, limit int, categoryID *int64, search string) Result[Page[*domain.Product]] {
	page, limit, valid := normalizePagination(page, limit)
	if !valid {
		return invalid[Page[*domain.Product]]("Page and limit must be positive numbers")
	}

	filter := repository.ProductFilter{CategoryID: categoryID, Search: search}
	products, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return failed[Page[*domain.Product]]("Error getting products")
	}

	return ok(pageOf(products, total, page, limit), "Products found successfully")
}

// GetByID returns the product with the given id
func (s *productService) GetByID(ctx context.Context, id string) Result[*domain.Product] {
	productID, err := uuid.Parse(id)
	if err != nil {
		return invalid[*domain.Product]("Product id must be a valid UUID")
	}
	return s.findByID(ctx, productID)
}

// Create validates the payload and inserts a new product
func (s *productService) Create(ctx context.Context, input ProductInput) Result[*domain.Product] {
	if err := validate.Struct(input); err != nil {
		return invalid[*domain.Product]("Validation errors", validationMessages(err)...)
	}

	product := newProduct(input, time.Now().UTC())
	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return failed[*domain.Product]("Error creating product")
	}

	return created(product, "Product created successfully")
}

// CreateBulk validates every element and inserts them all atomically.
// If any element is invalid, nothing is inserted and all accumulated
// messages are returned.
func (s *productService) CreateBulk(ctx context.Context, inputs []ProductInput) Result[[]*domain.Product] {
	if len(inputs) == 0 {
		return invalid[[]*domain.Product]("Products must be a non-empty array")
	}

	if errs := bulkValidationErrors("product", inputs); len(errs) > 0 {
		return invalid[[]*domain.Product]("Validation errors", errs...)
	}

	now := time.Now().UTC()
	products := make([]*domain.Product, 0, len(inputs))
	for _, input := range inputs {
		products = append(products, newProduct(input, now))
	}

	if err := s.repo.BulkCreate(ctx, products); err != nil {
		s.logger.Error("Failed to bulk create products", zap.Error(err))
		return failed[[]*domain.Product]("Error creating bulk products")
	}

	return created(products, fmt.Sprintf("%d products created successfully", len(products)))
}

// Update replaces the provided fields of an existing product
func (s *productService) Update(ctx context.Context, id string, input ProductUpdate) Result[*domain.Product] {
	productID, err := uuid.Parse(id)
	if err != nil {
		return invalid[*domain.Product]("Product id must be a valid UUID")
	}
	if err := validate.Struct(input); err != nil {
		return invalid[*domain.Product]("Validation errors", validationMessages(err)...)
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*domain.Product]("Product not found")
		}
		return failed[*domain.Product]("Error updating product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*domain.Product]("Product not found")
		}
		s.logger.Error("Failed to update product", zap.Error(err))
		return failed[*domain.Product]("Error updating product")
	}

	return ok(product, "Product updated successfully")
}

// Delete removes the product with the given id
func (s *productService) Delete(ctx context.Context, id string) Result[uuid.UUID] {
	productID, err := uuid.Parse(id)
	if err != nil {
		return invalid[uuid.UUID]("Product id must be a valid UUID")
	}
	return s.deleteByID(ctx, productID)
}

func newProduct(input ProductInput, now time.Time) *domain.Product {
	return &domain.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Price:       *input.Price,
		Image:       input.Image,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
