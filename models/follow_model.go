package models

import (
	"time"

	"github.com/google/uuid"
)

type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_campaign" json:"user_id"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_campaign" json:"campaign_id"`

	User     User     `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Campaign Campaign `gorm:"foreignkey:CampaignID" json:"campaign,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
