package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Collaboration is a restaurant-authored offer of a gastronomic exchange,
// open to creator applications. CreatorID is only set for direct invites.
type Collaboration struct {
	BaseModel
	RestaurantID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatorID          *uuid.UUID `gorm:"type:uuid"`
	Title              string     `gorm:"not null"`
	Description        string     `gorm:"not null"`
	CollaborationType  CollaborationType   `gorm:"type:collaboration_type;not null"`
	FoodTypes          pq.StringArray      `gorm:"type:food_type[];column:food_types"`
	Requirements       *string
	Deliverables       *string
	StartDate          *time.Time
	EndDate            *time.Time
	Status             CollaborationStatus `gorm:"type:collaboration_status;default:pending"`
	RestaurantRating   *int
	RestaurantFeedback *string
	CreatorRating      *int
	CreatorFeedback    *string

	Restaurant   *Restaurant                `gorm:"foreignKey:RestaurantID"`
	Applications []CollaborationApplication `gorm:"foreignKey:CollaborationID"`
}

func (Collaboration) TableName() string { return "collaborations" }
