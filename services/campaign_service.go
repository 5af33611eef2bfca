package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

// CampaignService owns the campaign ledger reads and the administrative
// status transition. RaisedAmount is never written here; only the payment
// service credits funds.
type CampaignService struct {
	DB *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{DB: db}
}

func (s *CampaignService) GetByID(campaignID uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.DB.Preload("Creator").First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("no campaign found with id %s", campaignID))
		}
		return nil, apperrors.Persistence(err)
	}
	return &campaign, nil
}

// committedTotal sums pending and completed donation amounts for a
// campaign inside the given transaction/session.
func committedTotal(tx *gorm.DB, campaignID uuid.UUID) (float64, error) {
	var total float64
	err := tx.Model(&models.Donation{}).
		Where("campaign_id = ? AND status IN ?", campaignID, models.CommittedStatuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// AvailableCapacity reports the amount a campaign can still accept,
// counting pending donations as committed. Never negative.
func (s *CampaignService) AvailableCapacity(campaignID uuid.UUID) (float64, error) {
	campaign, err := s.GetByID(campaignID)
	if err != nil {
		return 0, err
	}

	total, err := committedTotal(s.DB, campaignID)
	if err != nil {
		return 0, apperrors.Persistence(err)
	}
	return campaign.RemainingCapacity(total), nil
}

type CampaignDecisionResult struct {
	Campaign *models.Campaign    `json:"campaign"`
	Review   *models.AdminReview `json:"review"`
}

// ApplyAdminDecision records an admin review and moves the campaign
// through the review state machine in one transaction. Completed
// campaigns are terminal to this path.
func (s *CampaignService) ApplyAdminDecision(adminID, campaignID uuid.UUID, decision models.ReviewDecision, comments *string) (*CampaignDecisionResult, error) {
	var campaign models.Campaign
	var review models.AdminReview

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Creator").First(&campaign, "id = ?", campaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no campaign found with id %s", campaignID))
			}
			return apperrors.Persistence(err)
		}

		target := decision.CampaignStatus()
		if !campaign.CanAdminTransition(target) {
			return apperrors.Conflict("a completed campaign can no longer be reviewed")
		}

		review = models.AdminReview{
			AdminID:    adminID,
			CampaignID: campaignID,
			Decision:   decision,
			Comments:   comments,
		}
		if err := tx.Create(&review).Error; err != nil {
			return apperrors.Persistence(err)
		}

		if campaign.Status != target {
			oldStatus := campaign.Status
			campaign.Status = target
			if err := tx.Model(&campaign).Update("status", target).Error; err != nil {
				return apperrors.Persistence(err)
			}

			update := models.CampaignUpdate{
				CampaignID: campaignID,
				Content:    fmt.Sprintf("status changed from %s to %s", oldStatus, target),
			}
			if err := tx.Create(&update).Error; err != nil {
				return apperrors.Persistence(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CampaignDecisionResult{Campaign: &campaign, Review: &review}, nil
}

// UpdateCampaign mutates the editable fields only. RaisedAmount is
// rejected explicitly so derived totals cannot be tampered with.
func (s *CampaignService) UpdateCampaign(campaignID uuid.UUID, fields map[string]interface{}) (*models.Campaign, error) {
	if _, ok := fields["raised_amount"]; ok {
		return nil, apperrors.Validation("raised_amount cannot be updated manually; it is maintained by the payment system")
	}

	allowed := map[string]bool{"title": true, "description": true, "category": true, "goal_amount": true, "image": true}
	changes := map[string]interface{}{}
	for field, value := range fields {
		if !allowed[field] {
			continue
		}
		if field == "category" {
			raw, _ := value.(string)
			category, err := models.ParseCampaignCategory(raw)
			if err != nil {
				return nil, apperrors.Validation(err.Error())
			}
			value = category
		}
		changes[field] = value
	}

	var campaign models.Campaign
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&campaign, "id = ?", campaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(fmt.Sprintf("no campaign found with id %s", campaignID))
			}
			return apperrors.Persistence(err)
		}

		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&campaign).Updates(changes).Error; err != nil {
			return apperrors.Persistence(err)
		}

		update := models.CampaignUpdate{
			CampaignID: campaignID,
			Content:    fmt.Sprintf("campaign details updated: %v", changeKeys(changes)),
		}
		if err := tx.Create(&update).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func changeKeys(changes map[string]interface{}) []string {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	return keys
}
