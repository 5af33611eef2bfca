package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentSuccessful, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("invalid payment status: %q", s)
}

type Payment struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DonationID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"donation_id"`
	Amount     float64       `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method     string        `gorm:"size:50;not null" json:"method"`
	Status     PaymentStatus `gorm:"size:20;not null" json:"status"`

	Donation Donation `gorm:"foreignkey:DonationID" json:"donation,omitempty"`

	TransactionDate time.Time `gorm:"not null;autoCreateTime" json:"transaction_date"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CanTransitionTo encodes the payment state machine: pending, failed and
// refunded move freely among themselves; successful is terminal.
func (p *Payment) CanTransitionTo(target PaymentStatus) bool {
	if p.Status == PaymentSuccessful {
		return false
	}
	return true
}
