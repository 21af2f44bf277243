package services

import (
	"context"

	"github.com/google/uuid"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/utils"
)

type CollaborationServiceInterface interface {
	Create(ctx context.Context, restaurantID string, req request_models.CreateCollaborationRequest) (*response_models.CollaborationResponse, error)
	GetByID(ctx context.Context, id string) (*response_models.CollaborationResponse, error)
	ListMine(ctx context.Context, restaurantID string) ([]response_models.CollaborationResponse, error)
	Complete(ctx context.Context, restaurantID, collaborationID string, req request_models.CompleteCollaborationRequest) error
}

type CollaborationService struct {
	collaborationRepo repositories.CollaborationRepository
	restaurantRepo    repositories.RestaurantRepository
	creatorRepo       repositories.CreatorRepository
}

func NewCollaborationService(
	collaborationRepo repositories.CollaborationRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) CollaborationServiceInterface {
	return &CollaborationService{
		collaborationRepo: collaborationRepo,
		restaurantRepo:    restaurantRepo,
		creatorRepo:       creatorRepo,
	}
}

func (s *CollaborationService) Create(ctx context.Context, restaurantID string, req request_models.CreateCollaborationRequest) (*response_models.CollaborationResponse, error) {
	collabType := db_models.CollaborationType(req.CollaborationType)
	if !collabType.Valid() {
		return nil, utils.ErrInvalidInput
	}
	for _, ft := range req.FoodTypes {
		if !db_models.ValidFoodType(ft) {
			return nil, utils.ErrInvalidInput
		}
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	collaboration := &db_models.Collaboration{
		RestaurantID:      ownerID,
		Title:             req.Title,
		Description:       req.Description,
		CollaborationType: collabType,
		FoodTypes:         req.FoodTypes,
		StartDate:         startDate,
		EndDate:           endDate,
		Status:            db_models.StatusPending,
	}
	if req.Requirements != "" {
		collaboration.Requirements = &req.Requirements
	}
	if req.Deliverables != "" {
		collaboration.Deliverables = &req.Deliverables
	}
	if req.InvitedCreatorID != "" {
		invitedID, err := uuid.Parse(req.InvitedCreatorID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		collaboration.CreatorID = &invitedID
	}

	if err := s.collaborationRepo.InsertTx(ctx, collaboration); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.GetByID(ctx, collaboration.ID.String())
}

func (s *CollaborationService) GetByID(ctx context.Context, id string) (*response_models.CollaborationResponse, error) {
	collaboration, err := s.collaborationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if collaboration == nil {
		return nil, utils.ErrNotFound
	}
	resp := CollaborationToResponse(collaboration)
	return &resp, nil
}

// ListMine lists a restaurant's own offers regardless of status, newest
// first; it backs the restaurant panel's offer pipeline.
func (s *CollaborationService) ListMine(ctx context.Context, restaurantID string) ([]response_models.CollaborationResponse, error) {
	collaborations, err := s.collaborationRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CollaborationResponse, 0, len(collaborations))
	for i := range collaborations {
		out = append(out, CollaborationToResponse(&collaborations[i]))
	}
	return out, nil
}

// Complete closes an active collaboration: the owning restaurant rates the
// creator, and both sides' aggregates are recomputed.
func (s *CollaborationService) Complete(ctx context.Context, restaurantID, collaborationID string, req request_models.CompleteCollaborationRequest) error {
	collaboration, err := s.collaborationRepo.FindByID(ctx, collaborationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if collaboration == nil {
		return utils.ErrNotFound
	}
	if collaboration.RestaurantID.String() != restaurantID {
		return utils.ErrForbidden
	}
	if collaboration.Status != db_models.StatusActive || collaboration.CreatorID == nil {
		return utils.ErrInvalidInput
	}

	collaboration.Status = db_models.StatusCompleted
	collaboration.CreatorRating = &req.CreatorRating
	if req.Feedback != "" {
		collaboration.CreatorFeedback = &req.Feedback
	}
	if err := s.collaborationRepo.Update(ctx, collaboration); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.bumpCreatorStats(ctx, collaboration.CreatorID.String(), req.CreatorRating); err != nil {
		return err
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if restaurant == nil {
		return utils.ErrNotFound
	}
	return s.restaurantRepo.UpdateRatingStats(ctx, restaurantID,
		restaurant.AverageRating, restaurant.TotalCollaborations+1)
}

func (s *CollaborationService) bumpCreatorStats(ctx context.Context, creatorID string, rating int) error {
	creator, err := s.creatorRepo.FindByID(ctx, creatorID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if creator == nil {
		return utils.ErrNotFound
	}
	total := creator.TotalCollaborations
	average := (creator.AverageRating*float64(total) + float64(rating)) / float64(total+1)
	if err := s.creatorRepo.UpdateRatingStats(ctx, creatorID, average, total+1); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func CollaborationToResponse(c *db_models.Collaboration) response_models.CollaborationResponse {
	resp := response_models.CollaborationResponse{
		ID:                c.ID.String(),
		Title:             c.Title,
		Description:       c.Description,
		CollaborationType: string(c.CollaborationType),
		FoodTypes:         c.FoodTypes,
		Requirements:      deref(c.Requirements),
		Deliverables:      deref(c.Deliverables),
		StartDate:         utils.FormatDate(c.StartDate),
		EndDate:           utils.FormatDate(c.EndDate),
		Status:            string(c.Status),
		CreatedAt:         utils.FormatTimestamp(c.CreatedAt),
	}
	if c.Restaurant != nil {
		resp.Restaurant = response_models.CollaborationOwnerResponse{
			ID:           c.Restaurant.ID.String(),
			BusinessName: c.Restaurant.BusinessName,
			Address:      c.Restaurant.Address,
		}
		if c.Restaurant.Profile != nil {
			resp.Restaurant.Province = c.Restaurant.Profile.Province
		}
	}
	return resp
}
