package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/services"
)

type DonationHandler struct {
	Donations *services.DonationService
	Stats     *services.StatsService
}

func NewDonationHandler(donations *services.DonationService, stats *services.StatsService) *DonationHandler {
	return &DonationHandler{Donations: donations, Stats: stats}
}

type CreateDonationRequest struct {
	CampaignID string  `json:"campaign_id" validate:"required,uuid4"`
	Amount     float64 `json:"amount" validate:"required"`
}

func (h *DonationHandler) Create(c *fiber.Ctx) error {
	donorID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return apperrors.Validation("invalid campaign_id format")
	}

	donation, err := h.Donations.Create(donorID, campaignID, req.Amount)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"message":  "donation successful",
		"donation": donation,
	})
}

func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	donationID, err := parseUUIDParam(c, "donationId")
	if err != nil {
		return err
	}

	donation, err := h.Donations.GetByID(donationID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "donation": donation})
}

func (h *DonationHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	donations, err := h.Donations.ListByUser(userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "donations": donations})
}

func (h *DonationHandler) ListByCampaign(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	donations, err := h.Donations.ListByCampaign(campaignID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "donations": donations})
}

func (h *DonationHandler) Cancel(c *fiber.Ctx) error {
	donationID, err := parseUUIDParam(c, "donationId")
	if err != nil {
		return err
	}

	donation, err := h.Donations.Cancel(donationID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "donation": donation})
}

type SetDonationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *DonationHandler) SetStatus(c *fiber.Ctx) error {
	donationID, err := parseUUIDParam(c, "donationId")
	if err != nil {
		return err
	}

	var req SetDonationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	donation, err := h.Donations.SetStatus(donationID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "donation": donation})
}

// CampaignStats reports per-status donation counts and totals for one
// campaign.
func (h *DonationHandler) CampaignStats(c *fiber.Ctx) error {
	campaignID, err := parseUUIDParam(c, "campaignId")
	if err != nil {
		return err
	}

	stats, err := h.Stats.CampaignDonations(campaignID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "stats": stats})
}
