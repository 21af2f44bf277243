package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodiesbnb/internal/models/db_models"
)

type ProfileRepository interface {
	// CreateWithRole inserts the profile together with its role row
	// (restaurant or creator) in one transaction. Exactly one of
	// restaurant/creator must be non-nil.
	CreateWithRole(ctx context.Context, profile *db_models.Profile, restaurant *db_models.Restaurant, creator *db_models.Creator) error
	FindByID(ctx context.Context, id string) (*db_models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Profile, error)
	Update(ctx context.Context, profile *db_models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// IsDuplicateKey reports whether an insert lost the race against another
// row with the same unique key, e.g. two concurrent registrations of one
// email. Requires TranslateError on the gorm config.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (p *profileRepository) CreateWithRole(ctx context.Context, profile *db_models.Profile, restaurant *db_models.Restaurant, creator *db_models.Creator) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		if restaurant != nil {
			restaurant.ID = profile.ID
			if err := tx.Create(restaurant).Error; err != nil {
				return err
			}
		}
		if creator != nil {
			creator.ID = profile.ID
			if err := tx.Create(creator).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *profileRepository) FindByID(ctx context.Context, id string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) Update(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).Save(profile).Error
}
