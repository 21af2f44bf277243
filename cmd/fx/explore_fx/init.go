package explore_fx

import (
	"go.uber.org/fx"

	"foodiesbnb/internal/repositories"
	"foodiesbnb/internal/services"
)

var Module = fx.Provide(provideExploreService)

func provideExploreService(
	collaborationRepo repositories.CollaborationRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) services.ExploreServiceInterface {
	return services.NewExploreService(collaborationRepo, restaurantRepo, creatorRepo)
}
