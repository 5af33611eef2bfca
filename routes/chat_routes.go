package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func ChatRoutes(app *fiber.App, h *handlers.ChatHandler) {
	api := app.Group("/api/v1")

	chat := api.Group("/chat", middleware.Protected())
	chat.Post("", h.Chat)
	chat.Get("/history", h.History)
	chat.Delete("/history", h.ClearHistory)

	admin := api.Group("/admin/chat", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/documents", h.AddDocument)
}
