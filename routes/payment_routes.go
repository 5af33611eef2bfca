package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/middleware"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("", h.Create)
	payments.Get("/donation/:donationId", h.GetByDonation)
	payments.Get("/:paymentId", h.GetByID)
	payments.Put("/:paymentId/status", h.UpdateStatus)
	payments.Put("/:paymentId/method", h.UpdateMethod)

	admin := api.Group("/admin/payments", middleware.Protected(), middleware.AdminRequired())
	admin.Get("", h.List)
	admin.Get("/transactions", h.TransactionHistory)
	admin.Get("/totals", h.Totals)
	admin.Delete("/:paymentId", h.Delete)
}
