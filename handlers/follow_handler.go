package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

type FollowHandler struct {
	DB *gorm.DB
}

func NewFollowHandler(db *gorm.DB) *FollowHandler {
	return &FollowHandler{DB: db}
}

// Toggle follows the campaign if the user is not following it yet, and
// unfollows otherwise.
func (h *FollowHandler) Toggle(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var campaign models.Campaign
	if err := h.DB.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("no campaign found with the given id")
		}
		return apperrors.Persistence(err)
	}

	var existing models.Follow
	err = h.DB.First(&existing, "user_id = ? AND campaign_id = ?", userID, campaignID).Error
	switch {
	case err == nil:
		if err := h.DB.Delete(&existing).Error; err != nil {
			return apperrors.Persistence(err)
		}
		return c.JSON(fiber.Map{
			"status":    "success",
			"following": false,
			"message":   "campaign unfollowed",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		follow := models.Follow{UserID: userID, CampaignID: campaignID}
		if err := h.DB.Create(&follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.JSON(fiber.Map{
					"status":    "success",
					"following": true,
					"message":   "already following this campaign",
				})
			}
			return apperrors.Persistence(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status":    "success",
			"following": true,
			"message":   "campaign followed",
		})
	default:
		return apperrors.Persistence(err)
	}
}

func (h *FollowHandler) IsFollowing(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var count int64
	err = h.DB.Model(&models.Follow{}).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		Count(&count).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "following": count > 0})
}

// ListForUser returns the campaigns the authenticated user follows.
func (h *FollowHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var follows []models.Follow
	err = h.DB.Preload("Campaign").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "follows": follows})
}

// Followers returns the users following a campaign plus the total count.
func (h *FollowHandler) Followers(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var follows []models.Follow
	err = h.DB.Preload("User").
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return apperrors.Persistence(err)
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"followers": follows,
		"count":     len(follows),
	})
}
