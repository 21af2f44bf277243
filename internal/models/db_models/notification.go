package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type      string     `gorm:"not null"`
	Title     string     `gorm:"not null"`
	Message   string     `gorm:"not null"`
	RelatedID *uuid.UUID `gorm:"type:uuid"`
	Read      bool       `gorm:"default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
