package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationCancelled DonationStatus = "cancelled"
	DonationRefunded  DonationStatus = "refunded"
)

func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(s) {
	case DonationPending, DonationCompleted, DonationCancelled, DonationRefunded:
		return DonationStatus(s), nil
	}
	return "", fmt.Errorf("invalid donation status: %q", s)
}

type Donation struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DonorID    uuid.UUID      `gorm:"type:uuid;not null" json:"donor_id"`
	CampaignID uuid.UUID      `gorm:"type:uuid;not null" json:"campaign_id"`
	Amount     float64        `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status     DonationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	Donor    User     `gorm:"foreignkey:DonorID" json:"donor,omitempty"`
	Campaign Campaign `gorm:"foreignkey:CampaignID" json:"campaign,omitempty"`
	Payment  *Payment `gorm:"foreignkey:DonationID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommittedStatuses are the donation states that count against a
// campaign's goal for capacity checks.
var CommittedStatuses = []DonationStatus{DonationPending, DonationCompleted}
