package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	UserType string `json:"user_type" binding:"required,oneof=restaurant creator"`
	Province string `json:"province" binding:"required"`

	// Role-specific optional fields captured at registration.
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	CreatorName  string `json:"creator_name"`
}
