package response_models

type CollaborationOwnerResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Province     string `json:"province"`
}

type CollaborationResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	CollaborationType string   `json:"collaboration_type"`
	FoodTypes         []string `json:"food_types"`
	Requirements      string   `json:"requirements,omitempty"`
	Deliverables      string   `json:"deliverables,omitempty"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"created_at"`

	Restaurant CollaborationOwnerResponse `json:"restaurant"`
}

type ApplicationResponse struct {
	ID              string `json:"id"`
	CollaborationID string `json:"collaboration_id"`
	CreatorID       string `json:"creator_id"`
	CreatorName     string `json:"creator_name,omitempty"`
	Message         string `json:"message,omitempty"`
	Status          string `json:"status"`
	AppliedAt       string `json:"applied_at"`
}
