package response

import (
	"time"

	"franguinho-pos/internal/usecase/readmodel"
)

type SettingsResponse struct {
	PendingEnabled     bool      `json:"pendingEnabled"`
	PreparingEnabled   bool      `json:"preparingEnabled"`
	WhatsAppWebhookURL *string   `json:"whatsappWebhookUrl,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromSettingsRM intentionally omits the store token; it is webhook
// credential material, not staff-facing state.
func FromSettingsRM(rm *readmodel.StoreSettingsRM) *SettingsResponse {
	return &SettingsResponse{
		PendingEnabled:     rm.PendingEnabled,
		PreparingEnabled:   rm.PreparingEnabled,
		WhatsAppWebhookURL: rm.WhatsAppWebhookURL,
		UpdatedAt:          rm.UpdatedAt,
	}
}
