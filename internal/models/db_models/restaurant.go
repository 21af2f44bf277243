package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Restaurant shares its primary key with the owning profile (1:1).
type Restaurant struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BusinessName        string         `gorm:"not null"`
	Address             string         `gorm:"not null"`
	Description         *string
	FoodTypes           pq.StringArray `gorm:"type:food_type[];column:food_types"`
	CollaborationTypes  pq.StringArray `gorm:"type:collaboration_type[];column:collaboration_types"`
	ImagesURLs          pq.StringArray `gorm:"type:text[];column:images_urls"`
	InstagramHandle     *string
	TiktokHandle        *string
	FacebookHandle      *string
	Verified            bool    `gorm:"default:false"`
	AverageRating       float64 `gorm:"default:0"`
	TotalCollaborations int     `gorm:"default:0"`

	Profile *Profile `gorm:"foreignKey:ID;references:ID"`
}

func (Restaurant) TableName() string { return "restaurants" }
