package response_models

// DashboardResponse backs both role panels; PanelTitle is the user-facing
// heading ("Panel de Restaurante" / "Panel de Creador").
type DashboardResponse struct {
	PanelTitle              string  `json:"panel_title"`
	FullName                string  `json:"full_name"`
	UserType                string  `json:"user_type"`
	ActiveCollaborations    int64   `json:"active_collaborations"`
	PendingApplications     int64   `json:"pending_applications"`
	CompletedCollaborations int64   `json:"completed_collaborations"`
	AverageRating           float64 `json:"average_rating"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
