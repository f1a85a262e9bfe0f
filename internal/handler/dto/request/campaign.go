package request

type CreateCampaignRequest struct {
	Name       string   `json:"name" binding:"required"`
	Message    string   `json:"message" binding:"required"`
	Recipients []string `json:"recipients" binding:"required,min=1"`
}
