package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func FollowRoutes(app *fiber.App, h *handlers.FollowHandler) {
	api := app.Group("/api/v1")

	api.Get("/campaigns/:campaignId/followers", h.Followers)

	follows := api.Group("", middleware.Protected())
	follows.Post("/campaigns/:campaignId/follow", h.Toggle)
	follows.Get("/campaigns/:campaignId/following", h.IsFollowing)
	follows.Get("/users/me/follows", h.ListForUser)
}
