package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodiesbnb/internal/models/db_models"
)

type CreatorRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Creator, error)
	Search(ctx context.Context, search, province string) ([]db_models.Creator, error)
	UpdateRatingStats(ctx context.Context, id string, average float64, total int) error
}

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func (c *creatorRepository) FindByID(ctx context.Context, id string) (*db_models.Creator, error) {
	var creator db_models.Creator
	err := c.db.WithContext(ctx).
		Preload("Profile").
		First(&creator, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &creator, nil
}

func (c *creatorRepository) Search(ctx context.Context, search, province string) ([]db_models.Creator, error) {
	var creators []db_models.Creator

	query := c.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.id = creators.id").
		Preload("Profile")

	if search != "" {
		query = query.Where("creators.creator_name ILIKE ?", "%"+search+"%")
	}
	if province != "" {
		query = query.Where("profiles.province = ?", province)
	}

	if err := query.Find(&creators).Error; err != nil {
		return nil, err
	}
	return creators, nil
}

func (c *creatorRepository) UpdateRatingStats(ctx context.Context, id string, average float64, total int) error {
	return c.db.WithContext(ctx).
		Model(&db_models.Creator{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating":       average,
			"total_collaborations": total,
		}).Error
}
