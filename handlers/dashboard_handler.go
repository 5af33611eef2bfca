package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/services"
)

type DashboardHandler struct {
	Stats *services.StatsService
}

func NewDashboardHandler(stats *services.StatsService) *DashboardHandler {
	return &DashboardHandler{Stats: stats}
}

func (h *DashboardHandler) PlatformStats(c *fiber.Ctx) error {
	stats, err := h.Stats.Platform()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": stats})
}

// DonorStats reports the authenticated donor's own giving summary.
func (h *DashboardHandler) DonorStats(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	stats, err := h.Stats.Donor(userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": stats})
}

// CreatorStats reports the authenticated creator's active-campaign
// summary.
func (h *DashboardHandler) CreatorStats(c *fiber.Ctx) error {
	creatorID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	stats, err := h.Stats.Creator(creatorID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": stats})
}

func (h *DashboardHandler) CommentAnalytics(c *fiber.Ctx) error {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	analytics, err := h.Stats.Comments(limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": analytics})
}
