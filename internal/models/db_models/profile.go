package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Profile extends an identity with role and region data. Exactly one row per
// identity; user_type never changes after registration.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"unique;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	UserType     UserType  `gorm:"type:user_type;not null"`
	Province     string    `gorm:"type:province;not null"`
	Phone        *string
	AvatarURL    *string
	Bio          *string
	Website      *string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string { return "profiles" }
