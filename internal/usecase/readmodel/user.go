package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Email     string
	Role      string
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
}
