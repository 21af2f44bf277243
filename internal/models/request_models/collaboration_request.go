package request_models

type CreateCollaborationRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	CollaborationType string   `json:"collaboration_type" binding:"required"`
	FoodTypes         []string `json:"food_types" binding:"required,min=1"`
	Requirements      string   `json:"requirements"`
	Deliverables      string   `json:"deliverables"`
	StartDate         string   `json:"start_date"` // YYYY-MM-DD, optional
	EndDate           string   `json:"end_date"`
	InvitedCreatorID  string   `json:"invited_creator_id"`
}

type CompleteCollaborationRequest struct {
	CreatorRating int    `json:"creator_rating" binding:"required,min=1,max=5"`
	Feedback      string `json:"feedback"`
}
