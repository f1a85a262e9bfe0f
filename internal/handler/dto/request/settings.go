package request

type UpdateSettingsRequest struct {
	PendingEnabled     bool    `json:"pendingEnabled"`
	PreparingEnabled   bool    `json:"preparingEnabled"`
	WhatsAppWebhookURL *string `json:"whatsappWebhookUrl" binding:"omitempty,url"`
}
