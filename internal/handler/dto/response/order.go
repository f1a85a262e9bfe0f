package response

import (
	"time"

	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	ProductID          uuid.UUID `json:"productId"`
	ProductName        string    `json:"productName"`
	UnitPriceCents     int64     `json:"unitPriceCents"`
	VariationCents     int64     `json:"variationCents"`
	Quantity           int32     `json:"quantity"`
	RedeemedWithPoints bool      `json:"redeemedWithPoints"`
}

// OrderFlowResponse lists the store's enabled pipeline stages in order.
type OrderFlowResponse struct {
	Stages []string `json:"stages"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone *string             `json:"customerPhone,omitempty"`
	Lines         []OrderLineResponse `json:"lines"`
	SubtotalCents int64               `json:"subtotalCents"`
	DiscountCents int64               `json:"discountCents"`
	TotalCents    int64               `json:"totalCents"`
	FreeShipping  bool                `json:"freeShipping"`
	CouponCode    *string             `json:"couponCode,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone *string   `json:"customerPhone,omitempty"`
	TotalCents    int64     `json:"totalCents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(rm.Lines))
	for _, l := range rm.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			UnitPriceCents:     l.UnitPriceCents,
			VariationCents:     l.VariationCents,
			Quantity:           l.Quantity,
			RedeemedWithPoints: l.RedeemedWithPoints,
		})
	}

	return &OrderResponse{
		ID:            rm.ID,
		CustomerName:  rm.CustomerName,
		CustomerPhone: rm.CustomerPhone,
		Lines:         lines,
		SubtotalCents: rm.SubtotalCents,
		DiscountCents: rm.DiscountCents,
		TotalCents:    rm.TotalCents,
		FreeShipping:  rm.FreeShipping,
		CouponCode:    rm.CouponCode,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromOrderListRMs(rms []*readmodel.OrderListRM) []*OrderListResponse {
	out := make([]*OrderListResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &OrderListResponse{
			ID:            rm.ID,
			CustomerName:  rm.CustomerName,
			CustomerPhone: rm.CustomerPhone,
			TotalCents:    rm.TotalCents,
			Status:        rm.Status,
			CreatedAt:     rm.CreatedAt,
		})
	}
	return out
}
