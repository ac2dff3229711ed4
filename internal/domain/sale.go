package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sale records a purchase of a single product
type Sale struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	SaleDate    time.Time `json:"sale_date" db:"sale_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
