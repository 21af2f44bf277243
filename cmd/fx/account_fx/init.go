package account_fx

import (
	"go.uber.org/fx"

	"foodiesbnb/internal/auth"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/sessioncache"
)

var Module = fx.Provide(provideAuthService)

func provideAuthService(
	profileRepo repositories.ProfileRepository,
	resolver auth.ProfileResolver,
	cache sessioncache.Store,
) services.AuthServiceInterface {
	return services.NewAuthService(profileRepo, resolver, cache)
}
