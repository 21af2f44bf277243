package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"foodiesbnb/cmd/fx/account_fx"
	"foodiesbnb/cmd/fx/application_fx"
	"foodiesbnb/cmd/fx/collaboration_fx"
	"foodiesbnb/cmd/fx/controllers_fx"
	"foodiesbnb/cmd/fx/dashboard_fx"
	"foodiesbnb/cmd/fx/db_fx"
	"foodiesbnb/cmd/fx/explore_fx"
	"foodiesbnb/cmd/fx/mail_fx"
	"foodiesbnb/cmd/fx/notification_fx"
	"foodiesbnb/cmd/fx/profile_fx"
	"foodiesbnb/internal/api/controllers"
	"foodiesbnb/internal/config"
	"foodiesbnb/internal/infra"
	"foodiesbnb/pkg/middleware"
	"foodiesbnb/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.Load()
	utils.SetJWTKey(cfg.JWT.Secret)

	if err := infra.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		db_fx.Module,
		mail_fx.Module,
		profile_fx.Module,
		account_fx.Module,
		collaboration_fx.Module,
		application_fx.Module,
		explore_fx.Module,
		dashboard_fx.Module,
		notification_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	exploreController *controllers.ExploreController,
	collaborationController *controllers.CollaborationController,
	applicationController *controllers.ApplicationController,
	dashboardController *controllers.DashboardController,
	profileController *controllers.ProfileController,
	notificationController *controllers.NotificationController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r,
		authController, exploreController, collaborationController,
		applicationController, dashboardController, profileController,
		notificationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	exploreController *controllers.ExploreController,
	collaborationController *controllers.CollaborationController,
	applicationController *controllers.ApplicationController,
	dashboardController *controllers.DashboardController,
	profileController *controllers.ProfileController,
	notificationController *controllers.NotificationController,
) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", authController.Register)
	accounts.POST("/login", authController.Login)

	accountsAuth := r.Group("/accounts", middleware.JWTAuthMiddleware())
	accountsAuth.GET("/session", authController.Session)
	accountsAuth.POST("/refresh-profile", authController.RefreshProfile)
	accountsAuth.POST("/logout", authController.Logout)

	explore := r.Group("/explore")
	explore.GET("/collaborations", exploreController.Collaborations)
	explore.GET("/restaurants", exploreController.Restaurants)
	explore.GET("/creators", exploreController.Creators)

	r.GET("/profile/:type/:id", profileController.GetPublic)
	r.GET("/collaborations/:id", collaborationController.GetByID)

	authed := r.Group("/", middleware.JWTAuthMiddleware())
	authed.GET("/dashboard", dashboardController.Get)
	authed.GET("/profiles/me", profileController.GetMine)
	authed.PUT("/profiles/me", profileController.UpdateMine)
	authed.GET("/notifications", notificationController.List)
	authed.PATCH("/notifications/:id/read", notificationController.MarkRead)
	authed.GET("/collaborations/:id/applications", applicationController.ListForCollaboration)

	restaurantOnly := authed.Group("/", middleware.RoleMiddleware("restaurant"))
	restaurantOnly.POST("/collaborations", collaborationController.Create)
	restaurantOnly.GET("/dashboard/collaborations", collaborationController.ListMine)
	restaurantOnly.POST("/collaborations/:id/complete", collaborationController.Complete)
	restaurantOnly.PATCH("/applications/:id", applicationController.Decide)

	creatorOnly := authed.Group("/", middleware.RoleMiddleware("creator"))
	creatorOnly.POST("/collaborations/:id/applications", applicationController.Apply)
	creatorOnly.GET("/collaborations/:id/applications/mine", applicationController.MyApplication)
}
