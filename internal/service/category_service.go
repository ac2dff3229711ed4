package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"

	"go.uber.org/zap"
)

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CategoryUpdate is the payload for updating a category. Only the
// provided fields are replaced; present fields must be non-empty.
type CategoryUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

// CategoryService defines the business operations on categories
type CategoryService interface {
	List(ctx context.Context, page, limit int) Result[Page[*domain.Category]]
	GetByID(ctx context.Context, id int64) Result[*domain.Category]
	Create(ctx context.Context, input CategoryInput) Result[*domain.Category]
	CreateBulk(ctx context.Context, inputs []CategoryInput) Result[[]*domain.Category]
	Update(ctx context.Context, id int64, input CategoryUpdate) Result[*domain.Category]
	Delete(ctx context.Context, id int64) Result[int64]
}

type categoryService struct {
	crudService[domain.Category, int64]
	repo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(repo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{
		crudService: crudService[domain.Category, int64]{store: repo, noun: "category", logger: logger},
		repo:        repo,
	}
}

// List returns one page of categories
func (s *categoryService) List(ctx context.Context, page, limit int) Result[Page[*domain.Category]] {
	page, limit, valid := normalizePagination(page, limit)
	if !valid {
		return invalid[Page[*domain.Category]]("Page and limit must be positive numbers")
	}

	categories, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return failed[Page[*domain.Category]]("Error getting categories")
	}

	return ok(pageOf(categories, total, page, limit), "Categories found successfully")
}

// GetByID returns the category with the given id
func (s *categoryService) GetByID(ctx context.Context, id int64) Result[*domain.Category] {
	if id < 1 {
		return invalid[*domain.Category]("Category id must be a positive number")
	}
	return s.findByID(ctx, id)
}

// Create validates the payload and inserts a new category
func (s *categoryService) Create(ctx context.Context, input CategoryInput) Result[*domain.Category] {
	if err := validate.Struct(input); err != nil {
		return invalid[*domain.Category]("Validation errors", validationMessages(err)...)
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return failed[*domain.Category]("Error creating category")
	}

	return created(category, "Category created successfully")
}

// CreateBulk validates every element and inserts them all atomically.
// If any element is invalid, nothing is inserted and all accumulated
// messages are returned.
func (s *categoryService) CreateBulk(ctx context.Context, inputs []CategoryInput) Result[[]*domain.Category] {
	if len(inputs) == 0 {
		return invalid[[]*domain.Category]("Categories must be a non-empty array")
	}

	if errs := bulkValidationErrors("category", inputs); len(errs) > 0 {
		return invalid[[]*domain.Category]("Validation errors", errs...)
	}

	now := time.Now().UTC()
	categories := make([]*domain.Category, 0, len(inputs))
	for _, input := range inputs {
		categories = append(categories, &domain.Category{
			Name:        input.Name,
			Description: input.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.repo.BulkCreate(ctx, categories); err != nil {
		s.logger.Error("Failed to bulk create categories", zap.Error(err))
		return failed[[]*domain.Category]("Error creating bulk categories")
	}

	return created(categories, fmt.Sprintf("%d categories created successfully", len(categories)))
}

// Update replaces the provided fields of an existing category
func (s *categoryService) Update(ctx context.Context, id int64, input CategoryUpdate) Result[*domain.Category] {
	if id < 1 {
		return invalid[*domain.Category]("Category id must be a positive number")
	}
	if err := validate.Struct(input); err != nil {
		return invalid[*domain.Category]("Validation errors", validationMessages(err)...)
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*domain.Category]("Category not found")
		}
		return failed[*domain.Category]("Error updating category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	category.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*domain.Category]("Category not found")
		}
		s.logger.Error("Failed to update category", zap.Error(err))
		return failed[*domain.Category]("Error updating category")
	}

	return ok(category, "Category updated successfully")
}

// Delete removes the category with the given id
func (s *categoryService) Delete(ctx context.Context, id int64) Result[int64] {
	if id < 1 {
		return invalid[int64]("Category id must be a positive number")
	}
	return s.deleteByID(ctx, id)
}
