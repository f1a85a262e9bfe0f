package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ProductRM struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
