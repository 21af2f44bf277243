package request_models

// UpdateProfileRequest never carries user_type: role is immutable after
// registration.
type UpdateProfileRequest struct {
	FullName  string `json:"full_name"`
	Province  string `json:"province"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	Website   string `json:"website"`
}

type ExploreQuery struct {
	Search   string `form:"search"`
	Province string `form:"province"`
}
