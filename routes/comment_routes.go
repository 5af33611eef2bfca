package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func CommentRoutes(app *fiber.App, h *handlers.CommentHandler) {
	api := app.Group("/api/v1")

	api.Get("/campaigns/:campaignId/comments", h.ListByCampaign)

	comments := api.Group("", middleware.Protected())
	comments.Post("/campaigns/:campaignId/comments", h.Create)
	comments.Post("/comments/:commentId/like", h.Like)
	comments.Delete("/comments/:commentId", h.Delete)
}
