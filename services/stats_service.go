package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

// StatsService is the read-only reporting layer. Empty result sets come
// back as zeroed structures, never as errors.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type PlatformStats struct {
	TotalRaised     float64 `json:"total_raised"`
	TotalDonors     int64   `json:"total_donors"`
	SuccessRate     float64 `json:"success_rate"`
	ActiveCampaigns int64   `json:"active_campaigns"`
}

// Platform aggregates the home page numbers. Total raised counts
// successful payments only.
func (s *StatsService) Platform() (*PlatformStats, error) {
	stats := &PlatformStats{}

	err := s.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentSuccessful).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRaised).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleDonor).Count(&stats.TotalDonors).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	var totalCampaigns, completedCampaigns int64
	if err := s.DB.Model(&models.Campaign{}).Count(&totalCampaigns).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	if err := s.DB.Model(&models.Campaign{}).Where("status = ?", models.CampaignCompleted).Count(&completedCampaigns).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}
	if totalCampaigns > 0 {
		stats.SuccessRate = math.Round(float64(completedCampaigns)/float64(totalCampaigns)*100*100) / 100
	}

	if err := s.DB.Model(&models.Campaign{}).Where("status = ?", models.CampaignActive).Count(&stats.ActiveCampaigns).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	return stats, nil
}

type TopCampaign struct {
	Title  string  `json:"title"`
	Raised float64 `json:"raised"`
}

type AdminKeyStats struct {
	TotalCampaigns   int64       `json:"total_campaigns"`
	ActiveCampaigns  int64       `json:"active_campaigns"`
	PendingCampaigns int64       `json:"pending_campaigns"`
	TotalRaised      float64     `json:"total_raised"`
	TotalUsers       int64       `json:"total_users"`
	TotalCreators    int64       `json:"total_creators"`
	TotalDonors      int64       `json:"total_donors"`
	TopCampaign      TopCampaign `json:"top_campaign"`
}

func (s *StatsService) AdminKeyStats() (*AdminKeyStats, error) {
	stats := &AdminKeyStats{}

	counts := []struct {
		dest  *int64
		model interface{}
		where []interface{}
	}{
		{&stats.TotalCampaigns, &models.Campaign{}, nil},
		{&stats.ActiveCampaigns, &models.Campaign{}, []interface{}{"status = ?", models.CampaignActive}},
		{&stats.PendingCampaigns, &models.Campaign{}, []interface{}{"status = ?", models.CampaignPending}},
		{&stats.TotalUsers, &models.User{}, nil},
		{&stats.TotalCreators, &models.User{}, []interface{}{"role = ?", models.RoleCreator}},
		{&stats.TotalDonors, &models.User{}, []interface{}{"role = ?", models.RoleDonor}},
	}
	for _, c := range counts {
		query := s.DB.Model(c.model)
		if c.where != nil {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, apperrors.Persistence(err)
		}
	}

	err := s.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentSuccessful).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRaised).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	var top TopCampaign
	err = s.DB.Model(&models.Campaign{}).
		Select("campaigns.title AS title, COALESCE(SUM(donations.amount), 0) AS raised").
		Joins("LEFT JOIN donations ON donations.campaign_id = campaigns.id AND donations.status = ?", models.DonationCompleted).
		Group("campaigns.title").
		Order("raised DESC").
		Limit(1).
		Scan(&top).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Persistence(err)
	}
	stats.TopCampaign = top

	return stats, nil
}

type StatusBreakdown struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type CampaignDonationStats struct {
	CampaignID   uuid.UUID                                 `json:"campaign_id"`
	GoalAmount   float64                                   `json:"goal_amount"`
	RaisedAmount float64                                   `json:"raised_amount"`
	ByStatus     map[models.DonationStatus]StatusBreakdown `json:"by_status"`
}

// CampaignDonations breaks donations out by status with count and sum per
// status value. Statuses with no donations report zeroes.
func (s *StatsService) CampaignDonations(campaignID uuid.UUID) (*CampaignDonationStats, error) {
	var campaign models.Campaign
	if err := s.DB.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("no campaign found with id %s", campaignID))
		}
		return nil, apperrors.Persistence(err)
	}

	stats := &CampaignDonationStats{
		CampaignID:   campaignID,
		GoalAmount:   campaign.GoalAmount,
		RaisedAmount: campaign.RaisedAmount,
		ByStatus:     map[models.DonationStatus]StatusBreakdown{},
	}

	var rows []struct {
		Status models.DonationStatus
		Count  int64
		Total  float64
	}
	err := s.DB.Model(&models.Donation{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("campaign_id = ?", campaignID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	for _, status := range []models.DonationStatus{
		models.DonationPending, models.DonationCompleted,
		models.DonationCancelled, models.DonationRefunded,
	} {
		stats.ByStatus[status] = StatusBreakdown{}
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = StatusBreakdown{Count: row.Count, Total: row.Total}
	}

	return stats, nil
}

type CreatorStats struct {
	CreatorID       uuid.UUID `json:"creator_id"`
	ActiveCampaigns int64     `json:"active_campaigns"`
	TotalRaised     float64   `json:"total_raised"`
	TotalDonors     int64     `json:"total_donors"`
}

// Creator summarizes a creator's live campaigns: how many are active, how
// much they have raised and how many distinct donors back them. A creator
// with no active campaigns gets a zeroed struct, not an error.
func (s *StatsService) Creator(creatorID uuid.UUID) (*CreatorStats, error) {
	stats := &CreatorStats{CreatorID: creatorID}

	err := s.DB.Model(&models.Campaign{}).
		Where("creator_id = ? AND status = ?", creatorID, models.CampaignActive).
		Count(&stats.ActiveCampaigns).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	err = s.DB.Model(&models.Campaign{}).
		Select("COALESCE(SUM(raised_amount), 0)").
		Where("creator_id = ? AND status = ?", creatorID, models.CampaignActive).
		Scan(&stats.TotalRaised).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	err = s.DB.Model(&models.Donation{}).
		Joins("JOIN campaigns ON campaigns.id = donations.campaign_id").
		Where("campaigns.creator_id = ? AND campaigns.status = ?", creatorID, models.CampaignActive).
		Distinct("donations.donor_id").
		Count(&stats.TotalDonors).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return stats, nil
}

type DonorStats struct {
	UserID             uuid.UUID `json:"user_id"`
	TotalDonated       float64   `json:"total_donated"`
	CampaignsSupported int64     `json:"campaigns_supported"`
	CompletedSupported int64     `json:"completed_supported"`
	ImpactScore        float64   `json:"impact_score"`
}

// ImpactScore converts a donor's completion ratio to a 0-5 score rounded
// to one decimal.
func ImpactScore(completedSupported, totalSupported int64) float64 {
	if totalSupported == 0 {
		return 0
	}
	score := float64(completedSupported) / float64(totalSupported) * 5
	return math.Round(score*10) / 10
}

func (s *StatsService) Donor(userID uuid.UUID) (*DonorStats, error) {
	stats := &DonorStats{UserID: userID}

	err := s.DB.Model(&models.Donation{}).
		Where("donor_id = ? AND status = ?", userID, models.DonationCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalDonated).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	err = s.DB.Model(&models.Donation{}).
		Where("donor_id = ?", userID).
		Distinct("campaign_id").
		Count(&stats.CampaignsSupported).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	err = s.DB.Model(&models.Donation{}).
		Joins("JOIN campaigns ON campaigns.id = donations.campaign_id").
		Where("donations.donor_id = ? AND campaigns.status = ?", userID, models.CampaignCompleted).
		Distinct("donations.campaign_id").
		Count(&stats.CompletedSupported).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	stats.ImpactScore = ImpactScore(stats.CompletedSupported, stats.CampaignsSupported)
	return stats, nil
}

type CommenterStat struct {
	Username     string `json:"username"`
	CommentCount int64  `json:"comment_count"`
}

type CommentedCampaignStat struct {
	Title        string `json:"title"`
	CommentCount int64  `json:"comment_count"`
}

type CommentAnalytics struct {
	TotalComments         int64                   `json:"total_comments"`
	AverageLikes          float64                 `json:"average_likes"`
	TopCommenters         []CommenterStat         `json:"top_commenters"`
	TopCommentedCampaigns []CommentedCampaignStat `json:"top_commented_campaigns"`
}

func (s *StatsService) Comments(limit int) (*CommentAnalytics, error) {
	if limit <= 0 {
		limit = 5
	}
	analytics := &CommentAnalytics{}

	if err := s.DB.Model(&models.Comment{}).Count(&analytics.TotalComments).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	err := s.DB.Model(&models.Comment{}).
		Select("COALESCE(AVG(likes), 0)").
		Scan(&analytics.AverageLikes).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	analytics.AverageLikes = math.Round(analytics.AverageLikes*100) / 100

	err = s.DB.Model(&models.Comment{}).
		Select("users.username AS username, COUNT(comments.id) AS comment_count").
		Joins("JOIN users ON users.id = comments.user_id").
		Group("users.username").
		Order("comment_count DESC").
		Limit(limit).
		Scan(&analytics.TopCommenters).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	err = s.DB.Model(&models.Comment{}).
		Select("campaigns.title AS title, COUNT(comments.id) AS comment_count").
		Joins("JOIN campaigns ON campaigns.id = comments.campaign_id").
		Group("campaigns.title").
		Order("comment_count DESC").
		Limit(limit).
		Scan(&analytics.TopCommentedCampaigns).Error
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return analytics, nil
}
