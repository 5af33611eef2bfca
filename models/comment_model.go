package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null" json:"campaign_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Content    string    `gorm:"size:255;not null" json:"content"`
	Likes      int       `gorm:"not null;default:0" json:"likes"`

	User     User     `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Campaign Campaign `gorm:"foreignkey:CampaignID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
