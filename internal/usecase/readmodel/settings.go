package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type StoreSettingsRM struct {
	StoreID            uuid.UUID
	PendingEnabled     bool
	PreparingEnabled   bool
	WhatsAppWebhookURL *string
	StoreToken         string
	UpdatedAt          time.Time
}
