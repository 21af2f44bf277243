package collaboration_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"foodiesbnb/internal/repositories"
	"foodiesbnb/internal/services"
)

var Module = fx.Provide(
	provideCollaborationRepo, provideCollaborationService)

func provideCollaborationRepo(db *gorm.DB) repositories.CollaborationRepository {
	return repositories.NewCollaborationRepository(db)
}

func provideCollaborationService(
	collaborationRepo repositories.CollaborationRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) services.CollaborationServiceInterface {
	return services.NewCollaborationService(collaborationRepo, restaurantRepo, creatorRepo)
}
