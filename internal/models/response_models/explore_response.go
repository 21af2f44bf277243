package response_models

type RestaurantCardResponse struct {
	ID                  string   `json:"id"`
	BusinessName        string   `json:"business_name"`
	Address             string   `json:"address"`
	Description         string   `json:"description,omitempty"`
	FoodTypes           []string `json:"food_types"`
	CollaborationTypes  []string `json:"collaboration_types"`
	Verified            bool     `json:"verified"`
	AverageRating       float64  `json:"average_rating"`
	TotalCollaborations int      `json:"total_collaborations"`
	FullName            string   `json:"full_name"`
	Province            string   `json:"province"`
	AvatarURL           string   `json:"avatar_url,omitempty"`
}

type CreatorCardResponse struct {
	ID                  string   `json:"id"`
	CreatorName         string   `json:"creator_name"`
	Categories          []string `json:"categories"`
	ContentStyle        string   `json:"content_style,omitempty"`
	InstagramFollowers  int      `json:"instagram_followers"`
	TiktokFollowers     int      `json:"tiktok_followers"`
	Verified            bool     `json:"verified"`
	AverageRating       float64  `json:"average_rating"`
	TotalCollaborations int      `json:"total_collaborations"`
	FullName            string   `json:"full_name"`
	Province            string   `json:"province"`
	AvatarURL           string   `json:"avatar_url,omitempty"`
}
