package jobs

import (
	"log"
	"time"

	"github.com/waliuddin1105/crowdfund/models"
	"github.com/waliuddin1105/crowdfund/notifications"
	"gorm.io/gorm"
)

// DeadlineNotifier emails creators whose active campaigns have passed
// their end date. It only notifies; campaign status is never changed
// outside the review and payment paths.
type DeadlineNotifier struct {
	DB       *gorm.DB
	notified map[string]bool
}

func NewDeadlineNotifier(db *gorm.DB) *DeadlineNotifier {
	return &DeadlineNotifier{DB: db, notified: make(map[string]bool)}
}

func (j *DeadlineNotifier) Run() {
	var campaigns []models.Campaign
	err := j.DB.Preload("Creator").
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", models.CampaignActive, time.Now()).
		Find(&campaigns).Error
	if err != nil {
		log.Printf("🔥 Deadline job: failed to load expired campaigns: %v", err)
		return
	}

	for _, campaign := range campaigns {
		key := campaign.ID.String()
		if j.notified[key] {
			continue
		}
		j.notified[key] = true

		subject, html := notifications.CampaignDeadlineEmail(
			campaign.Creator.Username, campaign.Title,
			campaign.RaisedAmount, campaign.GoalAmount,
		)
		go notifications.SendEmail(campaign.Creator.Username, campaign.Creator.Email, subject, html)
		log.Printf("Deadline notice queued for campaign %s (%s)", campaign.ID, campaign.Title)
	}
}
