package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ReviewDecision string

const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
	DecisionPending  ReviewDecision = "pending"
)

func ParseReviewDecision(s string) (ReviewDecision, error) {
	switch ReviewDecision(s) {
	case DecisionApproved, DecisionRejected, DecisionPending:
		return ReviewDecision(s), nil
	}
	return "", fmt.Errorf("invalid review decision: %q", s)
}

// CampaignStatus returns the campaign status an admin decision maps to.
func (d ReviewDecision) CampaignStatus() CampaignStatus {
	switch d {
	case DecisionApproved:
		return CampaignActive
	case DecisionRejected:
		return CampaignRejected
	default:
		return CampaignPending
	}
}

type AdminReview struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AdminID    uuid.UUID      `gorm:"type:uuid;not null" json:"admin_id"`
	CampaignID uuid.UUID      `gorm:"type:uuid;not null" json:"campaign_id"`
	Decision   ReviewDecision `gorm:"size:20;not null" json:"decision"`
	Comments   *string        `gorm:"type:text" json:"comments"`

	Admin    User     `gorm:"foreignkey:AdminID" json:"admin,omitempty"`
	Campaign Campaign `gorm:"foreignkey:CampaignID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
