package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodiesbnb/internal/models/db_models"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Restaurant, error)
	Search(ctx context.Context, search, province string) ([]db_models.Restaurant, error)
	UpdateRatingStats(ctx context.Context, id string, average float64, total int) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) FindByID(ctx context.Context, id string) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// Search filters by business name substring and by the owning profile's
// province, mirroring the explore page queries.
func (r *restaurantRepository) Search(ctx context.Context, search, province string) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant

	query := r.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.id = restaurants.id").
		Preload("Profile")

	if search != "" {
		query = query.Where("restaurants.business_name ILIKE ?", "%"+search+"%")
	}
	if province != "" {
		query = query.Where("profiles.province = ?", province)
	}

	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) UpdateRatingStats(ctx context.Context, id string, average float64, total int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating":       average,
			"total_collaborations": total,
		}).Error
}
