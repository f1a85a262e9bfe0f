package request

type CheckoutRequest struct {
	CustomerName  string     `json:"customerName" binding:"required"`
	CustomerPhone *string    `json:"customerPhone"`
	Items         []CartItem `json:"items" binding:"required,min=1,dive"`
	CouponCode    *string    `json:"couponCode"`
}
