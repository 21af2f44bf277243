package services

import (
	"context"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/utils"
)

type ProfileServiceInterface interface {
	// Resolve implements auth.ProfileResolver: a missing row is
	// utils.ErrProfileNotFound, a failed read is utils.ErrDatabaseError.
	Resolve(ctx context.Context, identityID string) (*db_models.Profile, error)
	GetRestaurantCard(ctx context.Context, id string) (*response_models.RestaurantCardResponse, error)
	GetCreatorCard(ctx context.Context, id string) (*response_models.CreatorCardResponse, error)
	UpdateProfile(ctx context.Context, identityID string, req request_models.UpdateProfileRequest) (*db_models.Profile, error)
}

type ProfileService struct {
	profileRepo    repositories.ProfileRepository
	restaurantRepo repositories.RestaurantRepository
	creatorRepo    repositories.CreatorRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	restaurantRepo repositories.RestaurantRepository,
	creatorRepo repositories.CreatorRepository,
) ProfileServiceInterface {
	return &ProfileService{
		profileRepo:    profileRepo,
		restaurantRepo: restaurantRepo,
		creatorRepo:    creatorRepo,
	}
}

func (p *ProfileService) Resolve(ctx context.Context, identityID string) (*db_models.Profile, error) {
	profile, err := p.profileRepo.FindByID(ctx, identityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}

func (p *ProfileService) GetRestaurantCard(ctx context.Context, id string) (*response_models.RestaurantCardResponse, error) {
	restaurant, err := p.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrNotFound
	}
	card := RestaurantToCard(restaurant)
	return &card, nil
}

func (p *ProfileService) GetCreatorCard(ctx context.Context, id string) (*response_models.CreatorCardResponse, error) {
	creator, err := p.creatorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrNotFound
	}
	card := CreatorToCard(creator)
	return &card, nil
}

// UpdateProfile mutates the owner's contact and region fields. user_type is
// immutable: there is no edit-role path.
func (p *ProfileService) UpdateProfile(ctx context.Context, identityID string, req request_models.UpdateProfileRequest) (*db_models.Profile, error) {
	profile, err := p.Resolve(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Province != "" {
		if !db_models.ValidProvince(req.Province) {
			return nil, utils.ErrInvalidInput
		}
		profile.Province = req.Province
	}
	if req.Phone != "" {
		profile.Phone = &req.Phone
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = &req.AvatarURL
	}
	if req.Bio != "" {
		profile.Bio = &req.Bio
	}
	if req.Website != "" {
		profile.Website = &req.Website
	}

	if err := p.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profile, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ProfileToResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	if profile == nil {
		return nil
	}
	return &response_models.ProfileResponse{
		ID:        profile.ID.String(),
		Email:     profile.Email,
		FullName:  profile.FullName,
		UserType:  string(profile.UserType),
		Province:  profile.Province,
		Phone:     deref(profile.Phone),
		AvatarURL: deref(profile.AvatarURL),
		Bio:       deref(profile.Bio),
		Website:   deref(profile.Website),
		CreatedAt: utils.FormatTimestamp(profile.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(profile.UpdatedAt),
	}
}

func RestaurantToCard(r *db_models.Restaurant) response_models.RestaurantCardResponse {
	card := response_models.RestaurantCardResponse{
		ID:                  r.ID.String(),
		BusinessName:        r.BusinessName,
		Address:             r.Address,
		Description:         deref(r.Description),
		FoodTypes:           r.FoodTypes,
		CollaborationTypes:  r.CollaborationTypes,
		Verified:            r.Verified,
		AverageRating:       r.AverageRating,
		TotalCollaborations: r.TotalCollaborations,
	}
	if r.Profile != nil {
		card.FullName = r.Profile.FullName
		card.Province = r.Profile.Province
		card.AvatarURL = deref(r.Profile.AvatarURL)
	}
	return card
}

func CreatorToCard(c *db_models.Creator) response_models.CreatorCardResponse {
	card := response_models.CreatorCardResponse{
		ID:                  c.ID.String(),
		CreatorName:         c.CreatorName,
		Categories:          c.Categories,
		ContentStyle:        deref(c.ContentStyle),
		InstagramFollowers:  c.InstagramFollowers,
		TiktokFollowers:     c.TiktokFollowers,
		Verified:            c.Verified,
		AverageRating:       c.AverageRating,
		TotalCollaborations: c.TotalCollaborations,
	}
	if c.Profile != nil {
		card.FullName = c.Profile.FullName
		card.Province = c.Profile.Province
		card.AvatarURL = deref(c.Profile.AvatarURL)
	}
	return card
}
