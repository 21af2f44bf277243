package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"foodiesbnb/internal/auth"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideRestaurantRepo, provideCreatorRepo,
	provideProfileService, provideResolver)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideRestaurantRepo(db *gorm.DB) repositories.RestaurantRepository {
	return repositories.NewRestaurantRepository(db)
}

func provideCreatorRepo(db *gorm.DB) repositories.CreatorRepository {
	return repositories.NewCreatorRepository(db)
}

func provideProfileService(
	profileRepo repositories.ProfileRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, restaurantRepo, creatorRepo)
}

func provideResolver(profileService services.ProfileServiceInterface) auth.ProfileResolver {
	return profileService
}
