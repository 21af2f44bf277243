package services

import (
	"context"
	"errors"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/utils"
)

const (
	restaurantPanelTitle = "Panel de Restaurante"
	creatorPanelTitle    = "Panel de Creador"
)

type DashboardServiceInterface interface {
	Build(ctx context.Context, identityID string) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	resolver          ProfileServiceInterface
	collaborationRepo repositories.CollaborationRepository
	applicationRepo   repositories.ApplicationRepository
	restaurantRepo    repositories.RestaurantRepository
	creatorRepo       repositories.CreatorRepository
}

func NewDashboardService(
	resolver ProfileServiceInterface,
	collaborationRepo repositories.CollaborationRepository,
	applicationRepo repositories.ApplicationRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) DashboardServiceInterface {
	return &DashboardService{
		resolver:          resolver,
		collaborationRepo: collaborationRepo,
		applicationRepo:   applicationRepo,
		restaurantRepo:    restaurantRepo,
		creatorRepo:       creatorRepo,
	}
}

// Build assembles the role panel: restaurants see their offer pipeline,
// creators see their application pipeline. A session without a profile row
// cannot hold a panel and is answered 401 so the client returns to /auth.
func (d *DashboardService) Build(ctx context.Context, identityID string) (*response_models.DashboardResponse, error) {
	profile, err := d.resolver.Resolve(ctx, identityID)
	if err != nil {
		if errors.Is(err, utils.ErrProfileNotFound) {
			return nil, utils.ErrUnauthorized
		}
		return nil, err
	}

	switch profile.UserType {
	case db_models.UserTypeRestaurant:
		return d.restaurantPanel(ctx, profile)
	case db_models.UserTypeCreator:
		return d.creatorPanel(ctx, profile)
	default:
		return nil, utils.ErrUnauthorized
	}
}

func (d *DashboardService) restaurantPanel(ctx context.Context, profile *db_models.Profile) (*response_models.DashboardResponse, error) {
	id := profile.ID.String()

	active, err := d.collaborationRepo.CountByRestaurantAndStatus(ctx, id, db_models.StatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	completed, err := d.collaborationRepo.CountByRestaurantAndStatus(ctx, id, db_models.StatusCompleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pending, err := d.applicationRepo.CountPendingForRestaurant(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	restaurant, err := d.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrNotFound
	}

	return &response_models.DashboardResponse{
		PanelTitle:              restaurantPanelTitle,
		FullName:                profile.FullName,
		UserType:                string(profile.UserType),
		ActiveCollaborations:    active,
		PendingApplications:     pending,
		CompletedCollaborations: completed,
		AverageRating:           restaurant.AverageRating,
	}, nil
}

func (d *DashboardService) creatorPanel(ctx context.Context, profile *db_models.Profile) (*response_models.DashboardResponse, error) {
	id := profile.ID.String()

	pending, err := d.applicationRepo.CountByCreatorAndStatus(ctx, id, db_models.StatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	accepted, err := d.applicationRepo.CountByCreatorAndStatus(ctx, id, db_models.StatusAccepted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	creator, err := d.creatorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrNotFound
	}

	return &response_models.DashboardResponse{
		PanelTitle:              creatorPanelTitle,
		FullName:                profile.FullName,
		UserType:                string(profile.UserType),
		ActiveCollaborations:    accepted,
		PendingApplications:     pending,
		CompletedCollaborations: int64(creator.TotalCollaborations),
		AverageRating:           creator.AverageRating,
	}, nil
}
