package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
)

var validate = validator.New()

// ErrorHandler is installed in fiber.Config and is the single place the
// error taxonomy becomes HTTP status codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if kind, ok := apperrors.KindOf(err); ok {
		code := fiber.StatusInternalServerError
		switch kind {
		case apperrors.KindValidation:
			code = fiber.StatusBadRequest
		case apperrors.KindNotFound:
			code = fiber.StatusNotFound
		case apperrors.KindConflict:
			code = fiber.StatusConflict
		case apperrors.KindPersistence:
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
		}
		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"code":    code,
		"message": err.Error(),
	})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid " + name + " format")
	}
	return id, nil
}
