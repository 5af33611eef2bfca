package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationService struct {
	DB *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{DB: db}
}

// Create admits a new donation against the campaign's remaining capacity.
// The campaign row is locked FOR UPDATE for the duration of the
// check-and-insert so two concurrent donations to a nearly-full campaign
// cannot both pass the capacity check.
func (s *DonationService) Create(donorID, campaignID uuid.UUID, amount float64) (*models.Donation, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than 0")
	}

	var donation models.Donation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var campaign models.Campaign
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campaign, "id = ?", campaignID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no campaign found with id %s", campaignID))
			}
			return apperrors.Persistence(err)
		}

		if campaign.Status != models.CampaignActive {
			return apperrors.Conflict(fmt.Sprintf("campaign is not active, current status: %s", campaign.Status))
		}

		committed, err := committedTotal(tx, campaignID)
		if err != nil {
			return apperrors.Persistence(err)
		}

		if committed >= campaign.GoalAmount {
			return apperrors.Conflict("campaign has already reached its goal amount, including pending donations")
		}

		if committed+amount > campaign.GoalAmount {
			remaining := campaign.RemainingCapacity(committed)
			return apperrors.Conflict(fmt.Sprintf("donation amount exceeds the campaign's remaining goal, maximum allowed: %.2f", remaining))
		}

		donation = models.Donation{
			DonorID:    donorID,
			CampaignID: campaignID,
			Amount:     amount,
			Status:     models.DonationPending,
		}
		if err := tx.Create(&donation).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (s *DonationService) GetByID(donationID uuid.UUID) (*models.Donation, error) {
	var donation models.Donation
	err := s.DB.Preload("Donor").Preload("Campaign").First(&donation, "id = ?", donationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("no donation found with id %s", donationID))
		}
		return nil, apperrors.Persistence(err)
	}
	return &donation, nil
}

func (s *DonationService) ListByUser(userID uuid.UUID) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.DB.Preload("Campaign").Where("donor_id = ?", userID).
		Order("created_at DESC").Find(&donations).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return donations, nil
}

func (s *DonationService) ListByCampaign(campaignID uuid.UUID) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.DB.Preload("Donor").Where("campaign_id = ?", campaignID).
		Order("created_at DESC").Find(&donations).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return donations, nil
}

// Cancel transitions a donation to cancelled. Completed donations cannot
// be cancelled: their payment has already been credited to the campaign.
func (s *DonationService) Cancel(donationID uuid.UUID) (*models.Donation, error) {
	var donation models.Donation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&donation, "id = ?", donationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no donation found with id %s", donationID))
			}
			return apperrors.Persistence(err)
		}

		if donation.Status == models.DonationCompleted {
			return apperrors.Conflict("cannot cancel a completed donation, the payment has already been processed and added to the campaign")
		}

		donation.Status = models.DonationCancelled
		if err := tx.Model(&donation).Update("status", models.DonationCancelled).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// SetStatus performs caller-driven status changes. Transitions into
// completed are reserved for the payment service and rejected here.
func (s *DonationService) SetStatus(donationID uuid.UUID, status string) (*models.Donation, error) {
	newStatus, err := models.ParseDonationStatus(status)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var donation models.Donation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&donation, "id = ?", donationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no donation found with id %s", donationID))
			}
			return apperrors.Persistence(err)
		}

		if newStatus == models.DonationCompleted && donation.Status != models.DonationCompleted {
			return apperrors.Conflict("cannot manually mark a donation as completed, donations are completed through the payment system")
		}

		donation.Status = newStatus
		if err := tx.Model(&donation).Update("status", newStatus).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}
