package service

import (
	"context"
	"errors"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleInput is the payload for creating a sale. Quantity defaults to 1
// and the sale date to the current time when unset.
type SaleInput struct {
	ProductID   string     `json:"product_id" validate:"required,uuid"`
	Quantity    *int       `json:"quantity" validate:"omitempty,gte=1"`
	TotalAmount *float64   `json:"total_amount" validate:"required,gte=0"`
	SaleDate    *time.Time `json:"sale_date"`
}

// SaleUpdate is the payload for updating a sale. Only the provided
// fields are replaced.
type SaleUpdate struct {
	ProductID   *string    `json:"product_id" validate:"omitempty,uuid"`
	Quantity    *int       `json:"quantity" validate:"omitempty,gte=1"`
	TotalAmount *float64   `json:"total_amount" validate:"omitempty,gte=0"`
	SaleDate    *time.Time `json:"sale_date"`
}

// SaleService defines the business operations on sales
type SaleService interface {
	List(ctx context.Context, page, limit int) Result[Page[*domain.Sale]]
	GetByID(ctx context.Context, id string) Result[*domain.Sale]
	Create(ctx context.Context, input SaleInput) Result[*domain.Sale]
	Update(ctx context.Context, id string, input SaleUpdate) Result[*domain.Sale]
	Delete(ctx context.Context, id string) Result[uuid.UUID]
}

type saleService struct {
	crudService[domain.Sale, uuid.UUID]
	repo repository.SaleRepository
}

// NewSaleService creates a new instance of SaleService
func NewSaleService(repo repository.SaleRepository, logger *zap.Logger) SaleService {
	return &saleService{
		crudService: crudService[domain.Sale, uuid.UUID]{store: repo, noun: "sale", logger: logger},
		repo:        repo,
	}
}

// List returns one page of sales, newest first
func (s *saleService) List(ctx context.Context, page, limit int) Result[Page[*domain.Sale]] {
	page, limit, valid := normalizePagination(page, limit)
	if !valid {
		return invalid[Page[*domain.Sale]]("Page and limit must be positive numbers")
	}

	sales, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list sales", zap.Error(err))
		return failed[Page[*domain.Sale]]("Error getting sales")
	}

	return ok(pageOf(sales, total, page, limit), "Sales found successfully")
}

// GetByID returns the sale with the given id
func (s *saleService) GetByID(ctx context.Context, id string) Result[*domain.Sale] {
	saleID, err := uuid.Parse(id)
	if err != nil {
		return invalid[*domain.Sale]("Sale id must be a valid UUID")
	}
	return s.findByID(ctx, saleID)
}

// Create validates the payload and inserts a new sale
func (s *saleService) Create(ctx context.Context, input SaleInput) Result[*domain.Sale] {
	if err := validate.Struct(input); err != nil {
		return invalid[*domain.Sale]("Validation errors", validationMessages(err)...)
	}

	// ProductID already passed the uuid validation tag
	productID := uuid.MustParse(input.ProductID)

	now := time.Now().UTC()
	sale := &domain.Sale{
		ID:          uuid.New(),
		ProductID:   productID,
		Quantity:    1,
		TotalAmount: *input.TotalAmount,
		SaleDate:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Quantity != nil {
		sale.Quantity = *input.Quantity
	}
	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		s.logger.Error("Failed to create sale", zap.Error(err))
		return failed[*domain.Sale]("Error creating sale")
	}

	return created(sale, "Sale created successfully")
}

// Update replaces the provided fields of an existing sale
func (s *saleService) Update(ctx context.Context, id string, input SaleUpdate) Result[*domain.Sale] {
	saleID, err := uuid.Parse(id)
	if err != nil {
		return invalid[*domain.Sale]("Sale id must be a valid UUID")
	}
	if err := validate.Struct(input); err != nil {
		return invalid[*domain.Sale]("Validation errors", validationMessages(err)...)
	}

	sale, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*domain.Sale]("Sale not found")
		}
		return failed[*domain.Sale]("Error updating sale")
	}

	if input.ProductID != nil {
		sale.ProductID = uuid.MustParse(*input.ProductID)
	}
	if input.Quantity != nil {
		sale.Quantity = *input.Quantity
	}
	if input.TotalAmount != nil {
		sale.TotalAmount = *input.TotalAmount
	}
	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	sale.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, sale); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound[*domain.Sale]("Sale not found")
		}
		s.logger.Error("Failed to update sale", zap.Error(err))
		return failed[*domain.Sale]("Error updating sale")
	}

	return ok(sale, "Sale updated successfully")
}

// Delete removes the sale with the given id
func (s *saleService) Delete(ctx context.Context, id string) Result[uuid.UUID] {
	saleID, err := uuid.Parse(id)
	if err != nil {
		return invalid[uuid.UUID]("Sale id must be a valid UUID")
	}
	return s.deleteByID(ctx, saleID)
}
