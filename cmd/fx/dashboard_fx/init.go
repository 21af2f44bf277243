package dashboard_fx

import (
	"go.uber.org/fx"

	"foodiesbnb/internal/repositories"
	"foodiesbnb/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(
	profileService services.ProfileServiceInterface,
	collaborationRepo repositories.CollaborationRepository,
	applicationRepo repositories.ApplicationRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(profileService, collaborationRepo, applicationRepo, restaurantRepo, creatorRepo)
}
