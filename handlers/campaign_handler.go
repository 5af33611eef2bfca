package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/models"
	"github.com/waliuddin1105/crowdfund/services"
	"github.com/waliuddin1105/crowdfund/utils"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	DB        *gorm.DB
	Campaigns *services.CampaignService
}

func NewCampaignHandler(db *gorm.DB, campaigns *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{DB: db, Campaigns: campaigns}
}

type CreateCampaignRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
	Image       *string `json:"image,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	creatorID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	category, err := models.ParseCampaignCategory(req.Category)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	campaign := models.Campaign{
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		GoalAmount:  req.GoalAmount,
		Image:       req.Image,
		Status:      models.CampaignPending,
	}

	if req.StartDate != nil {
		start, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return apperrors.Validation("invalid start_date, expected RFC3339")
		}
		campaign.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return apperrors.Validation("invalid end_date, expected RFC3339")
		}
		campaign.EndDate = &end
	}

	if err := h.DB.Create(&campaign).Error; err != nil {
		return apperrors.Persistence(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"message":  "campaign created successfully",
		"campaign": campaign,
	})
}

// ListPublic returns every reviewed campaign (pending ones stay hidden
// until an admin decision).
func (h *CampaignHandler) ListPublic(c *fiber.Ctx) error {
	var campaigns []models.Campaign
	err := h.DB.Preload("Creator").
		Where("status <> ?", models.CampaignPending).
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "campaigns": campaigns})
}

// ListPaginated filters by optional category/status query params.
func (h *CampaignHandler) ListPaginated(c *fiber.Ctx) error {
	page, perPage := utils.Pagination(c)

	query := h.DB.Preload("Creator").Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		parsed, err := models.ParseCampaignCategory(category)
		if err != nil {
			return apperrors.Validation(err.Error())
		}
		query = query.Where("category = ?", parsed)
	}
	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseCampaignStatus(status)
		if err != nil {
			return apperrors.Validation(err.Error())
		}
		query = query.Where("status = ?", parsed)
	}

	var campaigns []models.Campaign
	err := query.Offset(utils.Offset(page, perPage)).Limit(perPage).Find(&campaigns).Error
	if err != nil {
		return apperrors.Persistence(err)
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"page":      page,
		"per_page":  perPage,
		"campaigns": campaigns,
	})
}

func (h *CampaignHandler) ListByStatus(c *fiber.Ctx) error {
	status, err := models.ParseCampaignStatus(c.Params("status"))
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	var campaigns []models.Campaign
	if err := h.DB.Preload("Creator").Where("status = ?", status).Find(&campaigns).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "campaigns": campaigns})
}

func (h *CampaignHandler) ListByCreator(c *fiber.Ctx) error {
	creatorID, err := parseUUIDParam(c, "creatorId")
	if err != nil {
		return err
	}

	var campaigns []models.Campaign
	if err := h.DB.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "count": len(campaigns), "campaigns": campaigns})
}

func (h *CampaignHandler) FullyFunded(c *fiber.Ctx) error {
	var campaigns []models.Campaign
	err := h.DB.Preload("Creator").
		Where("status = ?", models.CampaignCompleted).
		Order("updated_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "count": len(campaigns), "campaigns": campaigns})
}

func (h *CampaignHandler) Search(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return apperrors.Validation("enter a title to search")
	}

	var campaigns []models.Campaign
	if err := h.DB.Preload("Creator").Where("title ILIKE ?", "%"+title+"%").Find(&campaigns).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "campaigns": campaigns})
}

func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	campaign, err := h.Campaigns.GetByID(campaignID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "campaign": campaign})
}

// AvailableCapacity reports the remaining donatable amount, counting
// pending donations as committed.
func (h *CampaignHandler) AvailableCapacity(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	available, err := h.Campaigns.AvailableCapacity(campaignID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":           "success",
		"campaign_id":      campaignID,
		"available_amount": available,
	})
}

type UpdateCampaignRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	GoalAmount  *float64 `json:"goal_amount,omitempty" validate:"omitempty,gt=0"`
	Image       *string  `json:"image,omitempty"`
	// RaisedAmount is accepted here only so tampering attempts get a
	// precise rejection instead of being silently dropped.
	RaisedAmount *float64 `json:"raised_amount,omitempty"`
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var req UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.GoalAmount != nil {
		fields["goal_amount"] = *req.GoalAmount
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.RaisedAmount != nil {
		fields["raised_amount"] = *req.RaisedAmount
	}

	campaign, err := h.Campaigns.UpdateCampaign(campaignID, fields)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "campaign": campaign})
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var campaign models.Campaign
	if err := h.DB.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("campaign not found")
		}
		return apperrors.Persistence(err)
	}
	if campaign.CreatorID != userID {
		return fiber.NewError(fiber.StatusForbidden, "only the campaign creator can delete it")
	}

	// Donations, comments, follows, updates and reviews cascade.
	if err := h.DB.Select("Donations", "Comments", "Follows", "Updates", "Reviews").Delete(&campaign).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "campaign deleted successfully"})
}

type PostUpdateRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *CampaignHandler) PostUpdate(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req PostUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	var campaign models.Campaign
	if err := h.DB.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("campaign not found")
		}
		return apperrors.Persistence(err)
	}
	if campaign.CreatorID != userID {
		return fiber.NewError(fiber.StatusForbidden, "only the campaign creator can post updates")
	}

	update := models.CampaignUpdate{CampaignID: campaignID, Content: req.Content}
	if err := h.DB.Create(&update).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "update": update})
}

func (h *CampaignHandler) ListUpdates(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var updates []models.CampaignUpdate
	if err := h.DB.Where("campaign_id = ?", campaignID).Order("created_at DESC").Find(&updates).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "updates": updates})
}
