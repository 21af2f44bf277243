package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/pkg/utils"
)

type applicationFixture struct {
	svc              ApplicationServiceInterface
	applicationRepo  *fakeApplicationRepo
	collabRepo       *fakeCollaborationRepo
	notificationRepo *fakeNotificationRepo
	profileRepo      *fakeProfileRepo
	mail             *fakeMailService
}

func newApplicationFixture() *applicationFixture {
	f := &applicationFixture{
		applicationRepo:  &fakeApplicationRepo{},
		collabRepo:       newFakeCollaborationRepo(),
		notificationRepo: &fakeNotificationRepo{},
		profileRepo:      newFakeProfileRepo(),
		mail:             &fakeMailService{},
	}
	f.svc = NewApplicationService(f.applicationRepo, f.collabRepo, f.notificationRepo, f.profileRepo, f.mail)
	return f
}

func (f *applicationFixture) seedCollaboration(status db_models.CollaborationStatus) *db_models.Collaboration {
	collaboration := &db_models.Collaboration{
		RestaurantID:      uuid.New(),
		Title:             "Reseña de mariscos",
		Description:       "Cena para dos a cambio de un reel",
		CollaborationType: db_models.TypeFreeMeal,
		Status:            status,
	}
	_ = f.collabRepo.InsertTx(context.Background(), collaboration)
	return collaboration
}

func TestApplyCreatesApplicationAndNotifiesRestaurant(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)
	creatorID := uuid.New()

	resp, err := f.svc.Apply(context.Background(), creatorID.String(), collaboration.ID.String(), "Me encantaría participar")
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Me encantaría participar", resp.Message)

	require.Len(t, f.notificationRepo.notifications, 1)
	notification := f.notificationRepo.notifications[0]
	assert.Equal(t, collaboration.RestaurantID, notification.UserID)
	assert.Equal(t, "Nueva aplicación", notification.Title)
}

func TestApplyTwiceCreatesTwoRows(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)
	creatorID := uuid.New()

	_, err := f.svc.Apply(context.Background(), creatorID.String(), collaboration.ID.String(), "primera")
	require.NoError(t, err)
	_, err = f.svc.Apply(context.Background(), creatorID.String(), collaboration.ID.String(), "segunda")
	require.NoError(t, err)

	// Double submits are not deduplicated, both rows land.
	assert.Len(t, f.applicationRepo.applications, 2)
}

func TestApplyToNonPendingCollaboration(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusActive)

	_, err := f.svc.Apply(context.Background(), uuid.NewString(), collaboration.ID.String(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestApplyToMissingCollaboration(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.Apply(context.Background(), uuid.NewString(), uuid.NewString(), "")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDecideAcceptBindsCreatorAndActivates(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)
	creatorID := uuid.New()

	f.profileRepo.profiles[creatorID.String()] = &db_models.Profile{
		ID:       creatorID,
		Email:    "maria@example.com",
		FullName: "María Pérez",
		UserType: db_models.UserTypeCreator,
		Province: "santiago",
	}

	application := &db_models.CollaborationApplication{
		CollaborationID: collaboration.ID,
		CreatorID:       creatorID,
		Status:          db_models.StatusPending,
		Collaboration:   collaboration,
	}
	require.NoError(t, f.applicationRepo.InsertTx(context.Background(), application))

	err := f.svc.Decide(context.Background(), collaboration.RestaurantID.String(), application.ID.String(), db_models.StatusAccepted)
	require.NoError(t, err)

	assert.Equal(t, db_models.StatusAccepted, application.Status)
	assert.Equal(t, db_models.StatusActive, collaboration.Status)
	require.NotNil(t, collaboration.CreatorID)
	assert.Equal(t, creatorID, *collaboration.CreatorID)

	require.Len(t, f.notificationRepo.notifications, 1)
	assert.Equal(t, "Aplicación aceptada", f.notificationRepo.notifications[0].Title)
	assert.Equal(t, creatorID, f.notificationRepo.notifications[0].UserID)

	require.Len(t, f.mail.sentTo, 1)
	assert.Equal(t, "maria@example.com", f.mail.sentTo[0])
}

func TestDecideRejectLeavesCollaborationPending(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)

	application := &db_models.CollaborationApplication{
		CollaborationID: collaboration.ID,
		CreatorID:       uuid.New(),
		Status:          db_models.StatusPending,
		Collaboration:   collaboration,
	}
	require.NoError(t, f.applicationRepo.InsertTx(context.Background(), application))

	err := f.svc.Decide(context.Background(), collaboration.RestaurantID.String(), application.ID.String(), db_models.StatusRejected)
	require.NoError(t, err)

	assert.Equal(t, db_models.StatusRejected, application.Status)
	assert.Equal(t, db_models.StatusPending, collaboration.Status)
	assert.Nil(t, collaboration.CreatorID)
	assert.Empty(t, f.mail.sentTo)

	require.Len(t, f.notificationRepo.notifications, 1)
	assert.Equal(t, "Aplicación rechazada", f.notificationRepo.notifications[0].Title)
}

func TestDecideByNonOwnerForbidden(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)

	application := &db_models.CollaborationApplication{
		CollaborationID: collaboration.ID,
		CreatorID:       uuid.New(),
		Status:          db_models.StatusPending,
		Collaboration:   collaboration,
	}
	require.NoError(t, f.applicationRepo.InsertTx(context.Background(), application))

	err := f.svc.Decide(context.Background(), uuid.NewString(), application.ID.String(), db_models.StatusAccepted)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestDecideAlreadyDecided(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)

	application := &db_models.CollaborationApplication{
		CollaborationID: collaboration.ID,
		CreatorID:       uuid.New(),
		Status:          db_models.StatusRejected,
		Collaboration:   collaboration,
	}
	require.NoError(t, f.applicationRepo.InsertTx(context.Background(), application))

	err := f.svc.Decide(context.Background(), collaboration.RestaurantID.String(), application.ID.String(), db_models.StatusAccepted)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestListForCollaborationOwnerOnly(t *testing.T) {
	f := newApplicationFixture()
	collaboration := f.seedCollaboration(db_models.StatusPending)

	_, err := f.svc.ListForCollaboration(context.Background(), uuid.NewString(), collaboration.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	applications, err := f.svc.ListForCollaboration(context.Background(), collaboration.RestaurantID.String(), collaboration.ID.String())
	require.NoError(t, err)
	assert.Empty(t, applications)
}
