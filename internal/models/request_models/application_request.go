package request_models

type ApplyRequest struct {
	Message string `json:"message"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}
