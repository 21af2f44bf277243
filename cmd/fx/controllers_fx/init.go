package controllers_fx

import (
	"go.uber.org/fx"

	"foodiesbnb/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewExploreController),
	fx.Provide(controllers.NewCollaborationController),
	fx.Provide(controllers.NewApplicationController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewNotificationController))
