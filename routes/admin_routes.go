package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/campaigns/:campaignId/review", h.HandleCampaignStatus)
	admin.Get("/reviews", h.ListReviews)
	admin.Get("/reviews/campaign/:campaignId", h.ListReviewsByCampaign)
	admin.Put("/reviews/:reviewId", h.UpdateReview)
	admin.Delete("/reviews/:reviewId", h.DeleteReview)
	admin.Get("/stats", h.KeyStats)
}
