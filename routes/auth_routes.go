package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", middleware.Protected(), h.Logout)
}
