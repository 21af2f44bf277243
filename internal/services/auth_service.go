package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"foodiesbnb/internal/auth"
	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/sessioncache"
	"foodiesbnb/pkg/utils"
)

const sessionCacheTTL = 24 * time.Hour

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.SessionResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.SessionResponse, error)
	Session(ctx context.Context, identityID, email, token string) (*response_models.SessionResponse, error)
	RefreshProfile(ctx context.Context, identityID string) (*response_models.ProfileResponse, error)
	SignOut(token string)
}

type AuthService struct {
	profileRepo repositories.ProfileRepository
	resolver    auth.ProfileResolver
	cache       sessioncache.Store
}

func NewAuthService(
	profileRepo repositories.ProfileRepository,
	resolver auth.ProfileResolver,
	cache sessioncache.Store,
) AuthServiceInterface {
	return &AuthService{
		profileRepo: profileRepo,
		resolver:    resolver,
		cache:       cache,
	}
}

func (a *AuthService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.SessionResponse, error) {
	userType := db_models.UserType(req.UserType)
	if !userType.Valid() || !db_models.ValidProvince(req.Province) {
		return nil, utils.ErrInvalidInput
	}

	existing, err := a.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		UserType:     userType,
		Province:     req.Province,
	}

	var restaurant *db_models.Restaurant
	var creator *db_models.Creator
	switch userType {
	case db_models.UserTypeRestaurant:
		name := req.BusinessName
		if name == "" {
			name = req.FullName
		}
		restaurant = &db_models.Restaurant{BusinessName: name, Address: req.Address}
	case db_models.UserTypeCreator:
		name := req.CreatorName
		if name == "" {
			name = req.FullName
		}
		creator = &db_models.Creator{
			CreatorName: name,
			Categories:  []string{string(db_models.CategoryGeneral)},
		}
	}

	if err := a.profileRepo.CreateWithRole(ctx, profile, restaurant, creator); err != nil {
		// A concurrent registration can slip past the FindByEmail check and
		// lose the race at the unique index instead.
		if repositories.IsDuplicateKey(err) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	return a.openSession(ctx, profile)
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.SessionResponse, error) {
	profile, err := a.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(profile.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.openSession(ctx, profile)
}

// openSession issues a token and drives the session state machine through
// sign-in and profile resolution, mirroring the snapshot into the session
// cache along the way.
func (a *AuthService) openSession(ctx context.Context, profile *db_models.Profile) (*response_models.SessionResponse, error) {
	token, err := utils.CreateToken(profile.ID, profile.Email, string(profile.UserType))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	state := auth.NewState(a.resolver, a.cache, sessionCacheTTL)
	if err := state.SignIn(ctx, profile.ID.String(), profile.Email, token); err != nil {
		return nil, err
	}

	snap := state.Current()
	return &response_models.SessionResponse{
		Token:   token,
		UserID:  snap.UserID,
		Email:   snap.Email,
		Profile: ProfileToResponse(snap.Profile),
	}, nil
}

// Session answers the probe behind GET /accounts/session. The cached
// snapshot answers first when present; the profile itself always comes from
// the resolver so a forced sign-out is noticed within one round-trip.
func (a *AuthService) Session(ctx context.Context, identityID, email, token string) (*response_models.SessionResponse, error) {
	resp := &response_models.SessionResponse{UserID: identityID, Email: email}

	if snap, ok := a.cache.Get(token); ok {
		resp.Email = snap.Email
	}

	profile, err := a.resolver.Resolve(ctx, identityID)
	if err != nil {
		if errors.Is(err, utils.ErrProfileNotFound) {
			return resp, nil
		}
		return nil, err
	}
	resp.Email = profile.Email
	resp.Profile = ProfileToResponse(profile)
	return resp, nil
}

func (a *AuthService) RefreshProfile(ctx context.Context, identityID string) (*response_models.ProfileResponse, error) {
	profile, err := a.resolver.Resolve(ctx, identityID)
	if err != nil {
		return nil, err
	}
	return ProfileToResponse(profile), nil
}

// SignOut invalidates the cached session; the token itself simply ages out.
func (a *AuthService) SignOut(token string) {
	a.cache.Invalidate(token)
}
