package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func DashboardRoutes(app *fiber.App, h *handlers.DashboardHandler) {
	api := app.Group("/api/v1")

	api.Get("/stats/platform", h.PlatformStats)
	api.Get("/stats/me", middleware.Protected(), h.DonorStats)
	api.Get("/stats/creator", middleware.Protected(), middleware.CreatorRequired(), h.CreatorStats)
	api.Get("/admin/stats/comments", middleware.Protected(), middleware.AdminRequired(), h.CommentAnalytics)
}
