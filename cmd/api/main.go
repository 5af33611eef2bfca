package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/waliuddin1105/crowdfund/configs"
	"github.com/waliuddin1105/crowdfund/database"
	"github.com/waliuddin1105/crowdfund/handlers"
	"github.com/waliuddin1105/crowdfund/jobs"
	"github.com/waliuddin1105/crowdfund/notifications"
	"github.com/waliuddin1105/crowdfund/rag"
	"github.com/waliuddin1105/crowdfund/routes"
	"github.com/waliuddin1105/crowdfund/services"
	"github.com/waliuddin1105/crowdfund/websocket"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to run migrations: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}
	notifications.InitEmailService()

	hub := websocket.NewHub()
	go hub.Run()

	campaignService := services.NewCampaignService(db)
	donationService := services.NewDonationService(db)
	statsService := services.NewStatsService(db)
	receiptService := services.NewReceiptService(db)

	paymentService := services.NewPaymentService(db)
	paymentService.Events = hub
	paymentService.Receipts = receiptService

	var chatbot *rag.Chatbot
	if apiKey := config.Config("OPENAI_API_KEY"); apiKey != "" {
		chatbot = rag.NewChatbot(db, rag.NewOpenAIClient(apiKey))
		if err := chatbot.Warmup(); err != nil {
			log.Printf("Chatbot warmup failed, continuing without knowledge index: %v", err)
		}
	} else {
		log.Println("OPENAI_API_KEY not set, support chatbot disabled")
	}

	deadlineNotifier := jobs.NewDeadlineNotifier(db)
	c := cron.New()
	c.AddFunc("0 * * * *", deadlineNotifier.Run)
	go c.Start()
	log.Println("✅ Cron job for campaign deadlines scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "CrowdFund",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler:      handlers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to CrowdFund API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(db))
	routes.UserRoutes(app, handlers.NewUserHandler(db))
	routes.CampaignRoutes(app, handlers.NewCampaignHandler(db, campaignService))
	routes.DonationRoutes(app, handlers.NewDonationHandler(donationService, statsService))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(db, paymentService))
	routes.AdminRoutes(app, handlers.NewAdminHandler(db, campaignService, statsService))
	routes.DashboardRoutes(app, handlers.NewDashboardHandler(statsService))
	routes.CommentRoutes(app, handlers.NewCommentHandler(db))
	routes.FollowRoutes(app, handlers.NewFollowHandler(db))
	routes.ChatRoutes(app, handlers.NewChatHandler(chatbot))
	routes.UploadRoutes(app)
	routes.EventRoutes(app, handlers.NewEventsHandler(hub))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
