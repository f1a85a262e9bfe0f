package response

import (
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TopProductResponse struct {
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	QuantitySold int64     `json:"quantitySold"`
	RevenueCents int64     `json:"revenueCents"`
}

type DashboardSummaryResponse struct {
	Orders       int64                `json:"orders"`
	RevenueCents int64                `json:"revenueCents"`
	AvgTicket    int64                `json:"avgTicketCents"`
	CouponUses   int64                `json:"couponUses"`
	TopProducts  []TopProductResponse `json:"topProducts"`
}

func FromDashboardSummaryRM(rm *readmodel.DashboardSummaryRM) *DashboardSummaryResponse {
	top := make([]TopProductResponse, 0, len(rm.TopProducts))
	for _, p := range rm.TopProducts {
		top = append(top, TopProductResponse{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			QuantitySold: p.QuantitySold,
			RevenueCents: p.RevenueCents,
		})
	}
	return &DashboardSummaryResponse{
		Orders:       rm.OrdersToday,
		RevenueCents: rm.RevenueCentsToday,
		AvgTicket:    rm.AvgTicketCents,
		CouponUses:   rm.CouponUsesToday,
		TopProducts:  top,
	}
}
