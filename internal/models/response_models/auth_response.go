package response_models

type ProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	UserType  string `json:"user_type"`
	Province  string `json:"province"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Website   string `json:"website,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type SessionResponse struct {
	Token   string           `json:"token,omitempty"`
	UserID  string           `json:"user_id"`
	Email   string           `json:"email"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}
