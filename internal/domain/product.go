package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the catalog. CategoryID is optional;
// a product may exist without being assigned to a category.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Image       string    `json:"image" db:"image"`
	CategoryID  *int64    `json:"category_id" db:"category_id"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
