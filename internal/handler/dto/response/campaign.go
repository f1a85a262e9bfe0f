package response

import (
	"time"

	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CampaignResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Sent      int64     `json:"sent"`
	Failed    int64     `json:"failed"`
	Pending   int64     `json:"pending"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CampaignRecipientResponse struct {
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCampaignRM(rm *readmodel.CampaignRM) *CampaignResponse {
	return &CampaignResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Message:   rm.Message,
		Status:    rm.Status,
		Sent:      rm.Sent,
		Failed:    rm.Failed,
		Pending:   rm.Pending,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromCampaignRMs(rms []readmodel.CampaignRM) []*CampaignResponse {
	out := make([]*CampaignResponse, 0, len(rms))
	for i := range rms {
		out = append(out, FromCampaignRM(&rms[i]))
	}
	return out
}

func FromCampaignRecipientRMs(rms []readmodel.CampaignRecipientRM) []*CampaignRecipientResponse {
	out := make([]*CampaignRecipientResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &CampaignRecipientResponse{
			Phone:     rm.Phone,
			Status:    rm.Status,
			Error:     rm.Error,
			UpdatedAt: rm.UpdatedAt,
		})
	}
	return out
}
