package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"testing"
	"time"

	"catalog-api/internal/domain"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	connStr := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	_, err = testDB.Exec(`
		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			image TEXT NOT NULL DEFAULT '',
			category_id BIGINT REFERENCES categories(id),
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			total_amount NUMERIC(10,2) NOT NULL CHECK (total_amount >= 0),
			sale_date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

func truncateAll(t *testing.T) {
	t.Helper()
	if _, err := testDB.Exec(`TRUNCATE sales, products, categories RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("could not truncate tables: %v", err)
	}
}

func newCategory(name string) *domain.Category {
	now := time.Now().UTC()
	return &domain.Category{
		Name:        name,
		Description: "description of " + name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newTestProduct(name string, categoryID *int64, createdAt time.Time) *domain.Product {
	return &domain.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      9.99,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestCategoryRepository_CreateAssignsSequentialIDs(t *testing.T) {
	truncateAll(t)
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()

	first := newCategory("Drinks")
	second := newCategory("Snacks")

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("expected database-assigned ids, got %d and %d", first.ID, second.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestCategoryRepository_RoundTrip(t *testing.T) {
	truncateAll(t)
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()

	category := newCategory("Drinks")
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Name != "Drinks" || found.Description != "description of Drinks" {
		t.Errorf("round trip mismatch: %+v", found)
	}
}

func TestCategoryRepository_ListOrdersByNameAndCounts(t *testing.T) {
	truncateAll(t)
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()

	for _, name := range []string{"Snacks", "Drinks", "Pizza"} {
		if err := repo.Create(ctx, newCategory(name)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	categories, total, err := repo.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories on the first page, got %d", len(categories))
	}
	if categories[0].Name != "Drinks" || categories[1].Name != "Pizza" {
		t.Errorf("expected name ordering, got %q then %q", categories[0].Name, categories[1].Name)
	}
}

func TestCategoryRepository_UpdateAndDeleteMissingRowsReturnNotFound(t *testing.T) {
	truncateAll(t)
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()

	missing := newCategory("Ghost")
	missing.ID = 12345

	if err := repo.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found on update, got %v", err)
	}
	if err := repo.Delete(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found on delete, got %v", err)
	}
}

func TestCategoryRepository_BulkCreateInsertsAll(t *testing.T) {
	truncateAll(t)
	repo := NewCategoryRepository(testDB)
	ctx := context.Background()

	batch := []*domain.Category{newCategory("Drinks"), newCategory("Snacks"), newCategory("Pizza")}
	if err := repo.BulkCreate(ctx, batch); err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}

	for _, category := range batch {
		if category.ID == 0 {
			t.Errorf("category %q did not receive an id", category.Name)
		}
	}

	_, total, err := repo.List(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 rows, got %d", total)
	}
}

func TestProductRepository_BulkCreateRollsBackOnFailure(t *testing.T) {
	truncateAll(t)
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	now := time.Now().UTC()
	danglingCategory := int64(99999)
	batch := []*domain.Product{
		newTestProduct("Good one", nil, now),
		newTestProduct("Good two", nil, now),
		// Violates the category foreign key
		newTestProduct("Bad", &danglingCategory, now),
	}

	if err := repo.BulkCreate(ctx, batch); err == nil {
		t.Fatal("expected bulk create to fail on foreign key violation")
	}

	var count int
	if err := testDB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to leave 0 rows, found %d", count)
	}
}

func TestProductRepository_ListFiltersByCategoryAndSearch(t *testing.T) {
	truncateAll(t)
	categoryRepo := NewCategoryRepository(testDB)
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	drinks := newCategory("Drinks")
	snacks := newCategory("Snacks")
	if err := categoryRepo.Create(ctx, drinks); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := categoryRepo.Create(ctx, snacks); err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	base := time.Now().UTC().Add(-time.Hour)
	products := []*domain.Product{
		newTestProduct("Cola", &drinks.ID, base),
		newTestProduct("Lemonade", &drinks.ID, base.Add(time.Minute)),
		newTestProduct("Chips", &snacks.ID, base.Add(2*time.Minute)),
	}
	for _, product := range products {
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	byCategory, total, err := repo.List(ctx, ProductFilter{CategoryID: &drinks.ID}, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(byCategory) != 2 {
		t.Fatalf("expected 2 drinks, got total=%d len=%d", total, len(byCategory))
	}
	// Newest first
	if byCategory[0].Name != "Lemonade" {
		t.Errorf("expected newest product first, got %q", byCategory[0].Name)
	}

	bySearch, total, err := repo.List(ctx, ProductFilter{Search: "col"}, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(bySearch) != 1 || bySearch[0].Name != "Cola" {
		t.Errorf("expected case-insensitive match on Cola, got %+v", bySearch)
	}
}

func TestProductRepository_UpdateRoundTrip(t *testing.T) {
	truncateAll(t)
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	product := newTestProduct("Cola", nil, time.Now().UTC())
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	product.Name = "Cherry Cola"
	product.Price = 3.50
	product.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Name != "Cherry Cola" || found.Price != 3.50 {
		t.Errorf("update round trip mismatch: %+v", found)
	}
}

func TestSaleRepository_RoundTripAndNewestFirst(t *testing.T) {
	truncateAll(t)
	repo := NewSaleRepository(testDB)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var last *domain.Sale
	for i := 0; i < 3; i++ {
		sale := &domain.Sale{
			ID:          uuid.New(),
			ProductID:   uuid.New(),
			Quantity:    i + 1,
			TotalAmount: float64(i+1) * 10,
			SaleDate:    base.Add(time.Duration(i) * time.Minute),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, sale); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		last = sale
	}

	found, err := repo.FindByID(ctx, last.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Quantity != 3 || found.TotalAmount != 30 {
		t.Errorf("round trip mismatch: %+v", found)
	}

	sales, total, err := repo.List(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(sales) != 3 {
		t.Fatalf("expected 3 sales, got total=%d len=%d", total, len(sales))
	}
	if sales[0].ID != last.ID {
		t.Errorf("expected newest sale first")
	}
}

func TestSaleRepository_DeleteMissingRowReturnsNotFound(t *testing.T) {
	truncateAll(t)
	repo := NewSaleRepository(testDB)

	err := repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}
