package request

type SendMessageRequest struct {
	ClientPhone string `json:"clientPhone" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// InboundMessageRequest is posted by the messaging bridge; storeToken stands
// in for a staff session.
type InboundMessageRequest struct {
	ClientNumber string `json:"clientNumber" binding:"required"`
	Message      string `json:"message" binding:"required"`
	StoreToken   string `json:"storeToken" binding:"required"`
}
