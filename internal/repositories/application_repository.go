package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodiesbnb/internal/models/db_models"
)

type ApplicationRepository interface {
	// InsertTx performs a plain insert: there is no uniqueness check on
	// (collaboration, creator), so a rapid double submit creates two rows.
	InsertTx(ctx context.Context, application *db_models.CollaborationApplication) error
	FindByID(ctx context.Context, id string) (*db_models.CollaborationApplication, error)
	ListByCollaboration(ctx context.Context, collaborationID string) ([]db_models.CollaborationApplication, error)
	FindByCollaborationAndCreator(ctx context.Context, collaborationID, creatorID string) (*db_models.CollaborationApplication, error)
	UpdateStatus(ctx context.Context, id string, status db_models.CollaborationStatus) error
	CountByCreatorAndStatus(ctx context.Context, creatorID string, status db_models.CollaborationStatus) (int64, error)
	CountPendingForRestaurant(ctx context.Context, restaurantID string) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (a *applicationRepository) InsertTx(ctx context.Context, application *db_models.CollaborationApplication) error {
	return a.db.WithContext(ctx).Create(application).Error
}

func (a *applicationRepository) FindByID(ctx context.Context, id string) (*db_models.CollaborationApplication, error) {
	var application db_models.CollaborationApplication
	err := a.db.WithContext(ctx).
		Preload("Collaboration").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (a *applicationRepository) ListByCollaboration(ctx context.Context, collaborationID string) ([]db_models.CollaborationApplication, error) {
	var applications []db_models.CollaborationApplication
	err := a.db.WithContext(ctx).
		Preload("Creator").
		Preload("Creator.Profile").
		Where("collaboration_id = ?", collaborationID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (a *applicationRepository) FindByCollaborationAndCreator(ctx context.Context, collaborationID, creatorID string) (*db_models.CollaborationApplication, error) {
	var application db_models.CollaborationApplication
	err := a.db.WithContext(ctx).
		Where("collaboration_id = ? AND creator_id = ?", collaborationID, creatorID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (a *applicationRepository) UpdateStatus(ctx context.Context, id string, status db_models.CollaborationStatus) error {
	return a.db.WithContext(ctx).
		Model(&db_models.CollaborationApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (a *applicationRepository) CountByCreatorAndStatus(ctx context.Context, creatorID string, status db_models.CollaborationStatus) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.CollaborationApplication{}).
		Where("creator_id = ? AND status = ?", creatorID, status).
		Count(&count).Error
	return count, err
}

func (a *applicationRepository) CountPendingForRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.CollaborationApplication{}).
		Joins("JOIN collaborations ON collaborations.id = collaboration_applications.collaboration_id").
		Where("collaborations.restaurant_id = ? AND collaboration_applications.status = ?",
			restaurantID, db_models.StatusPending).
		Count(&count).Error
	return count, err
}
