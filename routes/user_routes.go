package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func UserRoutes(app *fiber.App, h *handlers.UserHandler) {
	api := app.Group("/api/v1")

	users := api.Group("/users", middleware.Protected())
	users.Get("/search", h.Search)
	users.Put("/me", h.UpdateProfile)
	users.Get("/:userId", h.GetProfile)

	admin := api.Group("/admin/users", middleware.Protected(), middleware.AdminRequired())
	admin.Get("", h.ListAll)
	admin.Delete("/:userId", h.Delete)
}
