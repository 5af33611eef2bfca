package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/models"
	"github.com/waliuddin1105/crowdfund/notifications"
	"github.com/waliuddin1105/crowdfund/services"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB        *gorm.DB
	Campaigns *services.CampaignService
	Stats     *services.StatsService
}

func NewAdminHandler(db *gorm.DB, campaigns *services.CampaignService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{DB: db, Campaigns: campaigns, Stats: stats}
}

type CampaignDecisionRequest struct {
	Decision string  `json:"decision" validate:"required"`
	Comments *string `json:"comments"`
}

// HandleCampaignStatus records the admin's review decision and moves the
// campaign into the matching status. The creator is emailed on approval
// and rejection.
func (h *AdminHandler) HandleCampaignStatus(c *fiber.Ctx) error {
	adminID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var req CampaignDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	decision, err := models.ParseReviewDecision(req.Decision)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	result, err := h.Campaigns.ApplyAdminDecision(adminID, campaignID, decision, req.Comments)
	if err != nil {
		return err
	}

	go h.notifyCreator(*result.Campaign, decision, req.Comments)

	return c.JSON(fiber.Map{
		"status":   "success",
		"campaign": result.Campaign,
		"review":   result.Review,
	})
}

func (h *AdminHandler) notifyCreator(campaign models.Campaign, decision models.ReviewDecision, comments *string) {
	var creator models.User
	if err := h.DB.First(&creator, "id = ?", campaign.CreatorID).Error; err != nil {
		log.Printf("review notification: load creator %s: %v", campaign.CreatorID, err)
		return
	}

	subject, body, ok := reviewEmail(decision, creator.Username, campaign.Title, comments)
	if !ok {
		return
	}
	notifications.SendEmail(creator.Username, creator.Email, subject, body)
}

// reviewEmail picks the notification for a review decision. Pending
// decisions send nothing.
func reviewEmail(decision models.ReviewDecision, username, campaignTitle string, comments *string) (subject, body string, ok bool) {
	switch decision {
	case models.DecisionApproved:
		subject, body = notifications.CampaignApprovedEmail(username, campaignTitle)
		return subject, body, true
	case models.DecisionRejected:
		reason := ""
		if comments != nil {
			reason = *comments
		}
		subject, body = notifications.CampaignRejectedEmail(username, campaignTitle, reason)
		return subject, body, true
	}
	return "", "", false
}

func (h *AdminHandler) ListReviews(c *fiber.Ctx) error {
	query := h.DB.Preload("Admin").Preload("Campaign").Order("created_at DESC")
	if decision := c.Query("decision"); decision != "" {
		parsed, err := models.ParseReviewDecision(decision)
		if err != nil {
			return apperrors.Validation(err.Error())
		}
		query = query.Where("decision = ?", parsed)
	}

	var reviews []models.AdminReview
	if err := query.Find(&reviews).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "reviews": reviews})
}

func (h *AdminHandler) ListReviewsByCampaign(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var reviews []models.AdminReview
	err = h.DB.Preload("Admin").
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "reviews": reviews})
}

type UpdateReviewRequest struct {
	Comments *string `json:"comments" validate:"required"`
}

// UpdateReview edits the comments on an existing review record. The
// decision itself is immutable once made; a new decision goes through
// HandleCampaignStatus so the campaign status stays in step.
func (h *AdminHandler) UpdateReview(c *fiber.Ctx) error {
	reviewID, err := parseUUIDParam(c, "reviewId")
	if err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	var review models.AdminReview
	if err := h.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NotFound("no review found with the given id")
		}
		return apperrors.Persistence(err)
	}

	review.Comments = req.Comments
	if err := h.DB.Save(&review).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "review": review})
}

func (h *AdminHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID, err := parseUUIDParam(c, "reviewId")
	if err != nil {
		return err
	}

	result := h.DB.Delete(&models.AdminReview{}, "id = ?", reviewID)
	if result.Error != nil {
		return apperrors.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("no review found with the given id")
	}
	return c.JSON(fiber.Map{"status": "success", "message": "review deleted successfully"})
}

func (h *AdminHandler) KeyStats(c *fiber.Ctx) error {
	stats, err := h.Stats.AdminKeyStats()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": stats})
}
