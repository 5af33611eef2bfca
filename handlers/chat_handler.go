package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/rag"
)

// ChatHandler serves the support chatbot. Bot is nil when no OpenAI key
// is configured, in which case every endpoint reports the assistant as
// unavailable instead of failing at startup.
type ChatHandler struct {
	Bot *rag.Chatbot
}

func NewChatHandler(bot *rag.Chatbot) *ChatHandler {
	return &ChatHandler{Bot: bot}
}

func (h *ChatHandler) available() error {
	if h.Bot == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, rag.ErrNotConfigured.Error())
	}
	return nil
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	if err := h.available(); err != nil {
		return err
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	reply, err := h.Bot.Respond(c.Context(), userID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "reply": reply})
}

func (h *ChatHandler) History(c *fiber.Ctx) error {
	if err := h.available(); err != nil {
		return err
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	history, err := h.Bot.History(userID, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "messages": history})
}

func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.available(); err != nil {
		return err
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	if err := h.Bot.DeleteHistory(userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "message": "chat history cleared"})
}

type AddDocumentRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1"`
}

// AddDocument lets admins grow the assistant's knowledge base.
func (h *ChatHandler) AddDocument(c *fiber.Ctx) error {
	if err := h.available(); err != nil {
		return err
	}

	var req AddDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	doc, err := h.Bot.AddDocument(c.Context(), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"document": doc,
	})
}
