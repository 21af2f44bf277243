package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodiesbnb/internal/models/db_models"
)

type CollaborationRepository interface {
	InsertTx(ctx context.Context, collaboration *db_models.Collaboration) error
	FindByID(ctx context.Context, id string) (*db_models.Collaboration, error)
	SearchPending(ctx context.Context, search, province string) ([]db_models.Collaboration, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]db_models.Collaboration, error)
	Update(ctx context.Context, collaboration *db_models.Collaboration) error
	CountByRestaurantAndStatus(ctx context.Context, restaurantID string, status db_models.CollaborationStatus) (int64, error)
}

type collaborationRepository struct {
	db *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) CollaborationRepository {
	return &collaborationRepository{db: db}
}

func (r *collaborationRepository) InsertTx(ctx context.Context, collaboration *db_models.Collaboration) error {
	return r.db.WithContext(ctx).Create(collaboration).Error
}

func (r *collaborationRepository) FindByID(ctx context.Context, id string) (*db_models.Collaboration, error) {
	var collaboration db_models.Collaboration
	err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("Restaurant.Profile").
		First(&collaboration, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collaboration, nil
}

// SearchPending lists open offers. The title filter is a substring match;
// the province filter is an equality on the owning restaurant's profile,
// reached through the restaurants join.
func (r *collaborationRepository) SearchPending(ctx context.Context, search, province string) ([]db_models.Collaboration, error) {
	var collaborations []db_models.Collaboration

	query := r.db.WithContext(ctx).
		Joins("JOIN restaurants ON restaurants.id = collaborations.restaurant_id").
		Joins("JOIN profiles ON profiles.id = restaurants.id").
		Where("collaborations.status = ?", db_models.StatusPending).
		Preload("Restaurant").
		Preload("Restaurant.Profile")

	if search != "" {
		query = query.Where("collaborations.title ILIKE ?", "%"+search+"%")
	}
	if province != "" {
		query = query.Where("profiles.province = ?", province)
	}

	if err := query.Find(&collaborations).Error; err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]db_models.Collaboration, error) {
	var collaborations []db_models.Collaboration
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&collaborations).Error
	if err != nil {
		return nil, err
	}
	return collaborations, nil
}

func (r *collaborationRepository) Update(ctx context.Context, collaboration *db_models.Collaboration) error {
	return r.db.WithContext(ctx).Save(collaboration).Error
}

func (r *collaborationRepository) CountByRestaurantAndStatus(ctx context.Context, restaurantID string, status db_models.CollaborationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Collaboration{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, status).
		Count(&count).Error
	return count, err
}
