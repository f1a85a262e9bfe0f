package response

import (
	"time"

	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientPhone string    `json:"clientPhone"`
	Body        string    `json:"body"`
	Direction   string    `json:"direction"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ConversationResponse struct {
	ClientPhone   string    `json:"clientPhone"`
	LastBody      string    `json:"lastBody"`
	LastDirection string    `json:"lastDirection"`
	LastAt        time.Time `json:"lastAt"`
	MessageCount  int64     `json:"messageCount"`
}

func FromMessageRM(rm *readmodel.MessageRM) *MessageResponse {
	return &MessageResponse{
		ID:          rm.ID,
		ClientPhone: rm.ClientPhone,
		Body:        rm.Body,
		Direction:   rm.Direction,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromMessageRMs(rms []readmodel.MessageRM) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(rms))
	for i := range rms {
		out = append(out, FromMessageRM(&rms[i]))
	}
	return out
}

func FromConversationRMs(rms []readmodel.ConversationRM) []*ConversationResponse {
	out := make([]*ConversationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &ConversationResponse{
			ClientPhone:   rm.ClientPhone,
			LastBody:      rm.LastBody,
			LastDirection: rm.LastDirection,
			LastAt:        rm.LastAt,
			MessageCount:  rm.MessageCount,
		})
	}
	return out
}
