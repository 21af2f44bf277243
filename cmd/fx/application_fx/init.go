package application_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"foodiesbnb/internal/repositories"
	"foodiesbnb/internal/services"
)

var Module = fx.Provide(
	provideApplicationRepo, provideApplicationService)

func provideApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return repositories.NewApplicationRepository(db)
}

func provideApplicationService(
	applicationRepo repositories.ApplicationRepository,
	collaborationRepo repositories.CollaborationRepository,
	notificationRepo repositories.NotificationRepository,
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
) services.ApplicationServiceInterface {
	return services.NewApplicationService(applicationRepo, collaborationRepo, notificationRepo, profileRepo, mailService)
}
