package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

type CommentHandler struct {
	DB *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{DB: db}
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=255"`
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	var campaign models.Campaign
	if err := h.DB.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("no campaign found with the given id")
		}
		return apperrors.Persistence(err)
	}

	comment := models.Comment{
		UserID:     userID,
		CampaignID: campaignID,
		Content:    req.Content,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		return apperrors.Persistence(err)
	}
	if err := h.DB.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return apperrors.Persistence(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"comment": comment,
	})
}

// ListByCampaign returns a campaign's comments newest first.
func (h *CommentHandler) ListByCampaign(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	var comments []models.Comment
	err = h.DB.Preload("User").
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "comments": comments})
}

func (h *CommentHandler) Like(c *fiber.Ctx) error {
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return err
	}

	result := h.DB.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return apperrors.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("no comment found with the given id")
	}

	var comment models.Comment
	if err := h.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "comment": comment})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "commentId")
	if err != nil {
		return err
	}

	var comment models.Comment
	if err := h.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("no comment found with the given id")
		}
		return apperrors.Persistence(err)
	}
	if comment.UserID != userID {
		return apperrors.Conflict("only the author can delete a comment")
	}

	if err := h.DB.Delete(&comment).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "comment deleted successfully"})
}
