package models

import (
	"time"

	"github.com/google/uuid"
)

type CampaignUpdate struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null" json:"campaign_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	Campaign Campaign `gorm:"foreignkey:CampaignID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
