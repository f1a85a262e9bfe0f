package campaign

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired       = errors.New("campaign name is required")
	ErrMessageRequired    = errors.New("campaign message is required")
	ErrNoRecipients       = errors.New("campaign has no recipients")
	ErrNotRunnable        = errors.New("only draft campaigns can be run")
	ErrInvalidStatus      = errors.New("invalid campaign status")
	ErrEmptyRecipient     = errors.New("recipient phone is empty")
	ErrInvalidRecipStatus = errors.New("invalid recipient status")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusRunning, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type RecipientStatus string

const (
	RecipientPending RecipientStatus = "pending"
	RecipientSent    RecipientStatus = "sent"
	RecipientFailed  RecipientStatus = "failed"
)

func (s RecipientStatus) String() string { return string(s) }

func NewRecipientStatus(s string) (RecipientStatus, error) {
	switch RecipientStatus(s) {
	case RecipientPending, RecipientSent, RecipientFailed:
		return RecipientStatus(s), nil
	default:
		return "", ErrInvalidRecipStatus
	}
}

// Campaign is a batch outbound-message job over a fixed recipient set. Each
// recipient's outcome is tracked independently; one failure never aborts the
// batch.
type Campaign struct {
	id         uuid.UUID
	storeID    uuid.UUID
	name       string
	message    string
	status     Status
	recipients []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCampaign(storeID uuid.UUID, name, message string, recipients []string) (*Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	cleaned := make([]string, 0, len(recipients))
	seen := make(map[string]struct{}, len(recipients))
	for _, r := range recipients {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, ErrEmptyRecipient
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		cleaned = append(cleaned, r)
	}

	return &Campaign{
		id:         uuid.New(),
		storeID:    storeID,
		name:       name,
		message:    message,
		status:     StatusDraft,
		recipients: cleaned,
	}, nil
}

func Reconstruct(
	id, storeID uuid.UUID,
	name, message string,
	status Status,
	recipients []string,
	createdAt, updatedAt time.Time,
) *Campaign {
	return &Campaign{
		id:         id,
		storeID:    storeID,
		name:       name,
		message:    message,
		status:     status,
		recipients: recipients,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Start transitions draft → running.
func (c *Campaign) Start() error {
	if c.status != StatusDraft {
		return ErrNotRunnable
	}
	c.status = StatusRunning
	return nil
}

func (c *Campaign) Complete() {
	c.status = StatusCompleted
}

func (c *Campaign) ID() uuid.UUID        { return c.id }
func (c *Campaign) StoreID() uuid.UUID   { return c.storeID }
func (c *Campaign) Name() string         { return c.name }
func (c *Campaign) Message() string      { return c.message }
func (c *Campaign) Status() Status       { return c.status }
func (c *Campaign) Recipients() []string { return c.recipients }
func (c *Campaign) CreatedAt() time.Time { return c.createdAt }
func (c *Campaign) UpdatedAt() time.Time { return c.updatedAt }
