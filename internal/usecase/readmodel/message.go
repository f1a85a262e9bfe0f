package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MessageRM struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	ClientPhone string
	Body        string
	Direction   string
	Status      string
	CreatedAt   time.Time
}

// ConversationRM is the latest message per client phone, store-scoped.
type ConversationRM struct {
	ClientPhone   string
	LastBody      string
	LastDirection string
	LastAt        time.Time
	MessageCount  int64
}
