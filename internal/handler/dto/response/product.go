package response

import (
	"time"

	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Category    string    `json:"category,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromProductRM(rm *readmodel.ProductRM) *ProductResponse {
	return &ProductResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		PriceCents:  rm.PriceCents,
		Category:    rm.Category,
		Active:      rm.Active,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromProductRMs(rms []*readmodel.ProductRM) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromProductRM(rm))
	}
	return out
}
