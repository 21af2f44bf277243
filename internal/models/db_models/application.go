package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaborationApplication is a creator's request to participate in a
// collaboration. At most one per (collaboration, creator) is assumed but not
// enforced; the insert path performs no uniqueness check.
type CollaborationApplication struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CollaborationID uuid.UUID           `gorm:"type:uuid;not null;index"`
	CreatorID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Message         *string
	Status          CollaborationStatus `gorm:"type:collaboration_status;default:pending"`
	AppliedAt       time.Time           `gorm:"autoCreateTime"`

	Creator       *Creator       `gorm:"foreignKey:CreatorID"`
	Collaboration *Collaboration `gorm:"foreignKey:CollaborationID"`
}

func (CollaborationApplication) TableName() string { return "collaboration_applications" }

func (a *CollaborationApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
