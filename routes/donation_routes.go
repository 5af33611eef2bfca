package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func DonationRoutes(app *fiber.App, h *handlers.DonationHandler) {
	api := app.Group("/api/v1")

	donations := api.Group("/donations", middleware.Protected())
	donations.Post("", h.Create)
	donations.Get("/user/:userId", h.ListByUser)
	donations.Get("/campaign/:campaignId", h.ListByCampaign)
	donations.Get("/campaign/:campaignId/stats", h.CampaignStats)
	donations.Get("/:donationId", h.GetByID)
	donations.Post("/:donationId/cancel", h.Cancel)
	donations.Put("/:donationId/status", middleware.AdminRequired(), h.SetStatus)
}
