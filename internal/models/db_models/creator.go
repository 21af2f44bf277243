package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Creator shares its primary key with the owning profile (1:1).
type Creator struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatorName         string         `gorm:"not null"`
	Categories          pq.StringArray `gorm:"type:creator_category[];column:categories"`
	ContentStyle        *string
	InstagramHandle     *string
	InstagramFollowers  int `gorm:"default:0"`
	TiktokHandle        *string
	TiktokFollowers     int `gorm:"default:0"`
	YoutubeHandle       *string
	YoutubeSubscribers  int `gorm:"default:0"`
	FacebookHandle      *string
	FacebookFollowers   int            `gorm:"default:0"`
	PortfolioURLs       pq.StringArray `gorm:"type:text[];column:portfolio_urls"`
	Verified            bool           `gorm:"default:false"`
	AverageRating       float64        `gorm:"default:0"`
	TotalCollaborations int            `gorm:"default:0"`

	Profile *Profile `gorm:"foreignKey:ID;references:ID"`
}

func (Creator) TableName() string { return "creators" }
