package service

import (
	"context"
	"sort"
	"strings"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"

	"github.com/google/uuid"
)

// Map-backed mock repositories for testing

type mockCategoryRepository struct {
	categories map[int64]*domain.Category
	nextID     int64
	failNext   error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[int64]*domain.Category)}
}

func (m *mockCategoryRepository) takeErr() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := m.takeErr(); err != nil {
		return err
	}
	m.nextID++
	category.ID = m.nextID
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) BulkCreate(ctx context.Context, categories []*domain.Category) error {
	if err := m.takeErr(); err != nil {
		return err
	}
	for _, category := range categories {
		m.nextID++
		category.ID = m.nextID
		m.categories[category.ID] = category
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if _, exists := m.categories[category.ID]; !exists {
		return repository.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	if _, exists := m.categories[id]; !exists {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, exists := m.categories[id]
	if !exists {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Category, int, error) {
	all := make([]*domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, pageSize), len(all), nil
}

type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
	failNext error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)}
}

func (m *mockProductRepository) takeErr() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := m.takeErr(); err != nil {
		return err
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) BulkCreate(ctx context.Context, products []*domain.Product) error {
	if err := m.takeErr(); err != nil {
		return err
	}
	for _, product := range products {
		m.products[product.ID] = product
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, exists := m.products[product.ID]; !exists {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.products[id]; !exists {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]*domain.Product, int, error) {
	matched := make([]*domain.Product, 0, len(m.products))
	for _, product := range m.products {
		if filter.CategoryID != nil {
			if product.CategoryID == nil || *product.CategoryID != *filter.CategoryID {
				continue
			}
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, product)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, page, pageSize), len(matched), nil
}

type mockSaleRepository struct {
	sales    map[uuid.UUID]*domain.Sale
	failNext error
}

func newMockSaleRepository() *mockSaleRepository {
	return &mockSaleRepository{sales: make(map[uuid.UUID]*domain.Sale)}
}

func (m *mockSaleRepository) takeErr() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *mockSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if err := m.takeErr(); err != nil {
		return err
	}
	m.sales[sale.ID] = sale
	return nil
}

func (m *mockSaleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	if _, exists := m.sales[sale.ID]; !exists {
		return repository.ErrSaleNotFound
	}
	m.sales[sale.ID] = sale
	return nil
}

func (m *mockSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.sales[id]; !exists {
		return repository.ErrSaleNotFound
	}
	delete(m.sales, id)
	return nil
}

func (m *mockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	sale, exists := m.sales[id]
	if !exists {
		return nil, repository.ErrSaleNotFound
	}
	return sale, nil
}

func (m *mockSaleRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Sale, int, error) {
	all := make([]*domain.Sale, 0, len(m.sales))
	for _, sale := range m.sales {
		all = append(all, sale)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, page, pageSize), len(all), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
