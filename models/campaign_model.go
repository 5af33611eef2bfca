package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignPending   CampaignStatus = "pending"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignRejected  CampaignStatus = "rejected"
)

func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(s) {
	case CampaignPending, CampaignActive, CampaignCompleted, CampaignRejected:
		return CampaignStatus(s), nil
	}
	return "", fmt.Errorf("invalid campaign status: %q", s)
}

type CampaignCategory string

const (
	CategoryEducation   CampaignCategory = "education"
	CategoryHealthcare  CampaignCategory = "healthcare"
	CategoryEnvironment CampaignCategory = "environment"
	CategoryAnimals     CampaignCategory = "animals"
	CategoryOther       CampaignCategory = "other"
	CategoryPersonal    CampaignCategory = "personal"
	CategoryEmergency   CampaignCategory = "emergency"
	CategoryCharity     CampaignCategory = "charity"
	CategoryMedical     CampaignCategory = "medical"
)

func ParseCampaignCategory(s string) (CampaignCategory, error) {
	switch CampaignCategory(s) {
	case CategoryEducation, CategoryHealthcare, CategoryEnvironment,
		CategoryAnimals, CategoryOther, CategoryPersonal,
		CategoryEmergency, CategoryCharity, CategoryMedical:
		return CampaignCategory(s), nil
	}
	return "", fmt.Errorf("invalid campaign category: %q", s)
}

type Campaign struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatorID    uuid.UUID        `gorm:"type:uuid;not null" json:"creator_id"`
	Title        string           `gorm:"size:100;not null" json:"title"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Image        *string          `gorm:"size:255" json:"image"`
	Category     CampaignCategory `gorm:"size:20;not null" json:"category"`
	GoalAmount   float64          `gorm:"type:numeric(10,2);not null" json:"goal_amount"`
	RaisedAmount float64          `gorm:"type:numeric(10,2);not null;default:0" json:"raised_amount"`
	Status       CampaignStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`

	Creator   User             `gorm:"foreignkey:CreatorID" json:"creator,omitempty"`
	Donations []Donation       `gorm:"foreignkey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Comments  []Comment        `gorm:"foreignkey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Follows   []Follow         `gorm:"foreignkey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Updates   []CampaignUpdate `gorm:"foreignkey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []AdminReview    `gorm:"foreignkey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyFunds credits a completed payment against the goal. Overshoot from
// the final donation clamps to the goal exactly; reaching the goal marks
// the campaign completed. Callers must hold the campaign row lock and
// persist the result in the same transaction as the payment.
func (c *Campaign) ApplyFunds(amount float64) {
	c.RaisedAmount += amount
	if c.RaisedAmount >= c.GoalAmount {
		c.RaisedAmount = c.GoalAmount
		c.Status = CampaignCompleted
	}
}

// RemainingCapacity floors at zero so callers never see a negative amount.
func (c *Campaign) RemainingCapacity(committedTotal float64) float64 {
	remaining := c.GoalAmount - committedTotal
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanAdminTransition reports whether the admin review path may move the
// campaign to the target status. Completed campaigns are terminal to the
// admin path; only the payment service completes a campaign.
func (c *Campaign) CanAdminTransition(target CampaignStatus) bool {
	if c.Status == CampaignCompleted {
		return false
	}
	switch target {
	case CampaignActive, CampaignRejected, CampaignPending:
		return true
	}
	return false
}
