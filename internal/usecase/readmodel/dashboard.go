package readmodel

import "github.com/google/uuid"

type TopProductRM struct {
	ProductID    uuid.UUID
	ProductName  string
	QuantitySold int64
	RevenueCents int64
}

type DashboardSummaryRM struct {
	OrdersToday       int64
	RevenueCentsToday int64
	AvgTicketCents    int64
	CouponUsesToday   int64
	TopProducts       []TopProductRM
}
