package services

import (
	"context"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/utils"
)

type ExploreServiceInterface interface {
	Collaborations(ctx context.Context, search, province string) ([]response_models.CollaborationResponse, error)
	Restaurants(ctx context.Context, search, province string) ([]response_models.RestaurantCardResponse, error)
	Creators(ctx context.Context, search, province string) ([]response_models.CreatorCardResponse, error)
}

type ExploreService struct {
	collaborationRepo repositories.CollaborationRepository
	restaurantRepo    repositories.RestaurantRepository
	creatorRepo       repositories.CreatorRepository
}

func NewExploreService(
	collaborationRepo repositories.CollaborationRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) ExploreServiceInterface {
	return &ExploreService{
		collaborationRepo: collaborationRepo,
		restaurantRepo:    restaurantRepo,
		creatorRepo:       creatorRepo,
	}
}

func validateProvince(province string) error {
	if province != "" && !db_models.ValidProvince(province) {
		return utils.ErrInvalidInput
	}
	return nil
}

func (e *ExploreService) Collaborations(ctx context.Context, search, province string) ([]response_models.CollaborationResponse, error) {
	if err := validateProvince(province); err != nil {
		return nil, err
	}
	collaborations, err := e.collaborationRepo.SearchPending(ctx, search, province)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CollaborationResponse, 0, len(collaborations))
	for i := range collaborations {
		out = append(out, CollaborationToResponse(&collaborations[i]))
	}
	return out, nil
}

func (e *ExploreService) Restaurants(ctx context.Context, search, province string) ([]response_models.RestaurantCardResponse, error) {
	if err := validateProvince(province); err != nil {
		return nil, err
	}
	restaurants, err := e.restaurantRepo.Search(ctx, search, province)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.RestaurantCardResponse, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, RestaurantToCard(&restaurants[i]))
	}
	return out, nil
}

func (e *ExploreService) Creators(ctx context.Context, search, province string) ([]response_models.CreatorCardResponse, error) {
	if err := validateProvince(province); err != nil {
		return nil, err
	}
	creators, err := e.creatorRepo.Search(ctx, search, province)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CreatorCardResponse, 0, len(creators))
	for i := range creators {
		out = append(out, CreatorToCard(&creators[i]))
	}
	return out, nil
}
