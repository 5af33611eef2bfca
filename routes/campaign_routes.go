package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func CampaignRoutes(app *fiber.App, h *handlers.CampaignHandler) {
	api := app.Group("/api/v1")

	// Public browse surface, no auth required.
	campaigns := api.Group("/campaigns")
	campaigns.Get("", h.ListPublic)
	campaigns.Get("/paginated", h.ListPaginated)
	campaigns.Get("/search", h.Search)
	campaigns.Get("/fully-funded", h.FullyFunded)
	campaigns.Get("/status/:status", h.ListByStatus)
	campaigns.Get("/creator/:creatorId", h.ListByCreator)
	campaigns.Get("/:campaignId", h.GetByID)
	campaigns.Get("/:campaignId/capacity", h.AvailableCapacity)
	campaigns.Get("/:campaignId/updates", h.ListUpdates)

	// Creator surface.
	campaigns.Post("", middleware.Protected(), middleware.CreatorRequired(), h.Create)
	campaigns.Put("/:campaignId", middleware.Protected(), middleware.CreatorRequired(), h.Update)
	campaigns.Delete("/:campaignId", middleware.Protected(), middleware.CreatorRequired(), h.Delete)
	campaigns.Post("/:campaignId/updates", middleware.Protected(), middleware.CreatorRequired(), h.PostUpdate)
}
