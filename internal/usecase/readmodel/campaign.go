package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CampaignRM struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Message   string
	Status    string
	Sent      int64
	Failed    int64
	Pending   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CampaignRecipientRM struct {
	CampaignID uuid.UUID
	Phone      string
	Status     string
	Error      *string
	UpdatedAt  time.Time
}
