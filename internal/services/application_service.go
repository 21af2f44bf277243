package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/utils"
)

type ApplicationServiceInterface interface {
	Apply(ctx context.Context, creatorID, collaborationID, message string) (*response_models.ApplicationResponse, error)
	ListForCollaboration(ctx context.Context, requesterID, collaborationID string) ([]response_models.ApplicationResponse, error)
	MyApplication(ctx context.Context, creatorID, collaborationID string) (*response_models.ApplicationResponse, error)
	Decide(ctx context.Context, restaurantID, applicationID string, status db_models.CollaborationStatus) error
}

type ApplicationService struct {
	applicationRepo   repositories.ApplicationRepository
	collaborationRepo repositories.CollaborationRepository
	notificationRepo  repositories.NotificationRepository
	profileRepo       repositories.ProfileRepository
	mailService       IMailService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	collaborationRepo repositories.CollaborationRepository,
	notificationRepo repositories.NotificationRepository,
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
) ApplicationServiceInterface {
	return &ApplicationService{
		applicationRepo:   applicationRepo,
		collaborationRepo: collaborationRepo,
		notificationRepo:  notificationRepo,
		profileRepo:       profileRepo,
		mailService:       mailService,
	}
}

// Apply inserts the application directly. There is deliberately no
// (collaboration, creator) uniqueness check: two submits racing each other
// both land, matching the current production behavior.
func (s *ApplicationService) Apply(ctx context.Context, creatorID, collaborationID, message string) (*response_models.ApplicationResponse, error) {
	collaboration, err := s.collaborationRepo.FindByID(ctx, collaborationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if collaboration == nil {
		return nil, utils.ErrNotFound
	}
	if collaboration.Status != db_models.StatusPending {
		return nil, utils.ErrInvalidInput
	}

	creatorUUID, err := uuid.Parse(creatorID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	application := &db_models.CollaborationApplication{
		CollaborationID: collaboration.ID,
		CreatorID:       creatorUUID,
		Status:          db_models.StatusPending,
	}
	if message != "" {
		application.Message = &message
	}

	if err := s.applicationRepo.InsertTx(ctx, application); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notify(ctx, collaboration.RestaurantID, "application_received",
		"Nueva aplicación",
		"Un creador ha aplicado a tu colaboración \""+collaboration.Title+"\"",
		&application.ID)

	resp := applicationToResponse(application)
	return &resp, nil
}

func (s *ApplicationService) ListForCollaboration(ctx context.Context, requesterID, collaborationID string) ([]response_models.ApplicationResponse, error) {
	collaboration, err := s.collaborationRepo.FindByID(ctx, collaborationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if collaboration == nil {
		return nil, utils.ErrNotFound
	}
	if collaboration.RestaurantID.String() != requesterID {
		return nil, utils.ErrForbidden
	}

	applications, err := s.applicationRepo.ListByCollaboration(ctx, collaborationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, applicationToResponse(&applications[i]))
	}
	return out, nil
}

func (s *ApplicationService) MyApplication(ctx context.Context, creatorID, collaborationID string) (*response_models.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByCollaborationAndCreator(ctx, collaborationID, creatorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if application == nil {
		return nil, utils.ErrNotFound
	}
	resp := applicationToResponse(application)
	return &resp, nil
}

// Decide accepts or rejects a pending application. Acceptance also binds the
// creator to the collaboration and moves it to active.
func (s *ApplicationService) Decide(ctx context.Context, restaurantID, applicationID string, status db_models.CollaborationStatus) error {
	if status != db_models.StatusAccepted && status != db_models.StatusRejected {
		return utils.ErrInvalidInput
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if application == nil || application.Collaboration == nil {
		return utils.ErrNotFound
	}
	if application.Collaboration.RestaurantID.String() != restaurantID {
		return utils.ErrForbidden
	}
	if application.Status != db_models.StatusPending {
		return utils.ErrInvalidInput
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return utils.ErrDatabaseError
	}

	collaboration := application.Collaboration
	if status == db_models.StatusAccepted {
		collaboration.CreatorID = &application.CreatorID
		collaboration.Status = db_models.StatusActive
		if err := s.collaborationRepo.Update(ctx, collaboration); err != nil {
			return utils.ErrDatabaseError
		}
	}

	title := "Aplicación rechazada"
	message := "Tu aplicación a \"" + collaboration.Title + "\" fue rechazada"
	if status == db_models.StatusAccepted {
		title = "Aplicación aceptada"
		message = "Tu aplicación a \"" + collaboration.Title + "\" fue aceptada"
	}
	s.notify(ctx, application.CreatorID, "application_"+string(status), title, message, &collaboration.ID)

	if status == db_models.StatusAccepted {
		s.mailAcceptance(ctx, application.CreatorID, collaboration.Title)
	}
	return nil
}

// notify writes the in-app notification row; a failed write is logged, not
// surfaced, so the main mutation stays committed.
func (s *ApplicationService) notify(ctx context.Context, userID uuid.UUID, notifType, title, message string, relatedID *uuid.UUID) {
	notification := &db_models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}
	if err := s.notificationRepo.InsertTx(ctx, notification); err != nil {
		log.Printf("Error inserting notification: %v", err)
	}
}

func (s *ApplicationService) mailAcceptance(ctx context.Context, creatorID uuid.UUID, collaborationTitle string) {
	profile, err := s.profileRepo.FindByID(ctx, creatorID.String())
	if err != nil || profile == nil {
		log.Printf("Error loading profile for acceptance mail: %v", err)
		return
	}
	if err := s.mailService.SendApplicationAccepted(profile.Email, profile.FullName, collaborationTitle); err != nil {
		log.Printf("Error sending acceptance mail: %v", err)
	}
}

func applicationToResponse(a *db_models.CollaborationApplication) response_models.ApplicationResponse {
	resp := response_models.ApplicationResponse{
		ID:              a.ID.String(),
		CollaborationID: a.CollaborationID.String(),
		CreatorID:       a.CreatorID.String(),
		Message:         deref(a.Message),
		Status:          string(a.Status),
		AppliedAt:       utils.FormatTimestamp(a.AppliedAt),
	}
	if a.Creator != nil {
		resp.CreatorName = a.Creator.CreatorName
	}
	return resp
}
