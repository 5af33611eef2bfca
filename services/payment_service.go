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

// EventPublisher receives ledger events after the owning transaction has
// committed. Implementations must not block.
type EventPublisher interface {
	PublishDonationCompleted(donation models.Donation, campaign models.Campaign)
	PublishCampaignCompleted(campaign models.Campaign)
}

// ReceiptIssuer renders and stores a receipt for a successful payment.
// Called asynchronously; failures never affect the payment itself.
type ReceiptIssuer interface {
	IssueReceipt(payment models.Payment)
}

// PaymentService is the single choke point through which money becomes
// real: the only writer of Campaign.RaisedAmount and the only component
// that marks donations completed.
type PaymentService struct {
	DB       *gorm.DB
	Events   EventPublisher
	Receipts ReceiptIssuer
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Create records a payment for a donation. A successful payment updates
// the donation and credits the campaign in the same transaction; any
// failure rolls the whole operation back.
func (s *PaymentService) Create(donationID uuid.UUID, amount float64, method, status string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than 0")
	}
	if method == "" {
		return nil, apperrors.Validation("payment method cannot be empty")
	}
	paymentStatus, err := models.ParsePaymentStatus(status)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var payment models.Payment
	var completed *completionResult

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var donation models.Donation
		if err := tx.First(&donation, "id = ?", donationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no donation found with id %s", donationID))
			}
			return apperrors.Persistence(err)
		}

		if amount != donation.Amount {
			return apperrors.Conflict(fmt.Sprintf("payment amount %.2f does not match donation amount %.2f", amount, donation.Amount))
		}

		payment = models.Payment{
			DonationID: donationID,
			Amount:     amount,
			Method:     method,
			Status:     paymentStatus,
		}
		// The unique index on donation_id is the arbiter for the
		// check-then-insert race: a concurrent insert surfaces here as a
		// duplicated-key error rather than a second payment row.
		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict(fmt.Sprintf("a payment already exists for donation %s", donationID))
			}
			return apperrors.Persistence(err)
		}

		if paymentStatus == models.PaymentSuccessful {
			result, err := s.completeWithinTx(tx, &payment, &donation)
			if err != nil {
				return err
			}
			completed = result
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterCompletion(payment, completed)
	return &payment, nil
}

type completionResult struct {
	donation models.Donation
	campaign models.Campaign
}

// completeWithinTx applies the one-time side effects of a successful
// payment: donation completed, then campaign credited. The campaign row is
// locked FOR UPDATE so concurrent completions serialize on the ledger.
func (s *PaymentService) completeWithinTx(tx *gorm.DB, payment *models.Payment, donation *models.Donation) (*completionResult, error) {
	donation.Status = models.DonationCompleted
	if err := tx.Model(donation).Update("status", models.DonationCompleted).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	var campaign models.Campaign
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&campaign, "id = ?", donation.CampaignID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("no campaign found for donation %s", donation.ID))
		}
		return nil, apperrors.Persistence(err)
	}

	if campaign.Status != models.CampaignActive {
		return nil, apperrors.Conflict(fmt.Sprintf("cannot apply funds, campaign is not active, current status: %s", campaign.Status))
	}

	campaign.ApplyFunds(payment.Amount)
	updates := map[string]interface{}{
		"raised_amount": campaign.RaisedAmount,
		"status":        campaign.Status,
	}
	if err := tx.Model(&campaign).Updates(updates).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	return &completionResult{donation: *donation, campaign: campaign}, nil
}

func (s *PaymentService) afterCompletion(payment models.Payment, result *completionResult) {
	if result == nil {
		return
	}
	if s.Events != nil {
		s.Events.PublishDonationCompleted(result.donation, result.campaign)
		if result.campaign.Status == models.CampaignCompleted {
			s.Events.PublishCampaignCompleted(result.campaign)
		}
	}
	if s.Receipts != nil {
		go s.Receipts.IssueReceipt(payment)
	}
}

func (s *PaymentService) GetByID(paymentID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Preload("Donation").Preload("Donation.Donor").Preload("Donation.Campaign").
		First(&payment, "id = ?", paymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("no payment found with id %s", paymentID))
		}
		return nil, apperrors.Persistence(err)
	}
	return &payment, nil
}

func (s *PaymentService) GetByDonation(donationID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.First(&payment, "donation_id = ?", donationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("no payment found for donation %s", donationID))
		}
		return nil, apperrors.Persistence(err)
	}
	return &payment, nil
}

func (s *PaymentService) List(status, method string) ([]models.Payment, error) {
	query := s.DB.Preload("Donation").Preload("Donation.Donor").Preload("Donation.Campaign").
		Order("transaction_date DESC")

	if status != "" {
		parsed, err := models.ParsePaymentStatus(status)
		if err != nil {
			return nil, apperrors.Validation(err.Error())
		}
		query = query.Where("status = ?", parsed)
	}
	if method != "" {
		query = query.Where("LOWER(method) = LOWER(?)", method)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	return payments, nil
}

// UpdateStatus drives the payment state machine. A payment already
// successful accepts a repeated successful as a no-op and rejects
// everything else; the first transition into successful performs the same
// three-way update as creation.
func (s *PaymentService) UpdateStatus(paymentID uuid.UUID, status string) (*models.Payment, error) {
	newStatus, err := models.ParsePaymentStatus(status)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var payment models.Payment
	var completed *completionResult

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no payment found with id %s", paymentID))
			}
			return apperrors.Persistence(err)
		}

		if payment.Status == models.PaymentSuccessful && newStatus == models.PaymentSuccessful {
			return nil // idempotent no-op, never double-credits
		}
		if !payment.CanTransitionTo(newStatus) {
			return apperrors.Conflict("cannot change the status of a successful payment, this would cause data inconsistency")
		}

		oldStatus := payment.Status
		payment.Status = newStatus
		if err := tx.Model(&payment).Update("status", newStatus).Error; err != nil {
			return apperrors.Persistence(err)
		}

		if newStatus == models.PaymentSuccessful && oldStatus != models.PaymentSuccessful {
			var donation models.Donation
			if err := tx.First(&donation, "id = ?", payment.DonationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound(fmt.Sprintf("no donation found for payment %s", paymentID))
				}
				return apperrors.Persistence(err)
			}

			result, err := s.completeWithinTx(tx, &payment, &donation)
			if err != nil {
				return err
			}
			completed = result
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterCompletion(payment, completed)
	return &payment, nil
}

func (s *PaymentService) UpdateMethod(paymentID uuid.UUID, method string) (*models.Payment, error) {
	if method == "" {
		return nil, apperrors.Validation("payment method cannot be empty")
	}

	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no payment found with id %s", paymentID))
			}
			return apperrors.Persistence(err)
		}

		if payment.Status == models.PaymentSuccessful {
			return apperrors.Conflict("cannot change the payment method of a successful payment")
		}

		payment.Method = method
		if err := tx.Model(&payment).Update("method", method).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Delete(paymentID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no payment found with id %s", paymentID))
			}
			return apperrors.Persistence(err)
		}

		if payment.Status == models.PaymentSuccessful {
			return apperrors.Conflict("cannot delete a successful payment, this would cause data inconsistency")
		}

		if err := tx.Delete(&payment).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return nil
	})
}
