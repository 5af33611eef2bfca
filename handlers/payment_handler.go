package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/models"
	"github.com/waliuddin1105/crowdfund/services"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewPaymentHandler(db *gorm.DB, payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{DB: db, Payments: payments}
}

type CreatePaymentRequest struct {
	DonationID string  `json:"donation_id" validate:"required,uuid4"`
	Amount     float64 `json:"amount" validate:"required"`
	Method     string  `json:"method" validate:"required"`
	Status     string  `json:"status" validate:"required"`
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	donationID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return apperrors.Validation("invalid donation_id format")
	}

	payment, err := h.Payments.Create(donationID, req.Amount, req.Method, req.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"payment": payment,
	})
}

func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	paymentID, err := parseUUIDParam(c, "paymentId")
	if err != nil {
		return err
	}

	payment, err := h.Payments.GetByID(paymentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "payment": payment})
}

func (h *PaymentHandler) GetByDonation(c *fiber.Ctx) error {
	donationID, err := parseUUIDParam(c, "donationId")
	if err != nil {
		return err
	}

	payment, err := h.Payments.GetByDonation(donationID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "payment": payment})
}

// List supports optional ?status= and ?method= filters.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.Payments.List(c.Query("status"), c.Query("method"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "payments": payments})
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	paymentID, err := parseUUIDParam(c, "paymentId")
	if err != nil {
		return err
	}

	var req UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	payment, err := h.Payments.UpdateStatus(paymentID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "payment": payment})
}

type UpdatePaymentMethodRequest struct {
	Method string `json:"method" validate:"required"`
}

func (h *PaymentHandler) UpdateMethod(c *fiber.Ctx) error {
	paymentID, err := parseUUIDParam(c, "paymentId")
	if err != nil {
		return err
	}

	var req UpdatePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	payment, err := h.Payments.UpdateMethod(paymentID, req.Method)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "payment": payment})
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	paymentID, err := parseUUIDParam(c, "paymentId")
	if err != nil {
		return err
	}

	if err := h.Payments.Delete(paymentID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "message": "payment deleted successfully"})
}

type transactionEntry struct {
	Type     string               `json:"type"`
	User     *models.User         `json:"user"`
	Campaign *fiber.Map           `json:"campaign"`
	Amount   float64              `json:"amount"`
	DateTime string               `json:"date_time"`
	Status   models.PaymentStatus `json:"status"`
}

// TransactionHistory lists all payments newest first, shaped for the
// admin transaction table.
func (h *PaymentHandler) TransactionHistory(c *fiber.Ctx) error {
	payments, err := h.Payments.List("", "")
	if err != nil {
		return err
	}

	entries := make([]transactionEntry, 0, len(payments))
	for _, p := range payments {
		entry := transactionEntry{
			Type:     "donation",
			Amount:   p.Amount,
			DateTime: p.TransactionDate.Format("2006-01-02 15:04"),
			Status:   p.Status,
		}
		if p.Donation.ID != uuid.Nil {
			donor := p.Donation.Donor
			entry.User = &donor
			entry.Campaign = &fiber.Map{
				"campaign_id": p.Donation.Campaign.ID,
				"title":       p.Donation.Campaign.Title,
			}
		}
		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{"status": "success", "data": entries})
}

// Totals reports the payment count and the sum over successful payments.
func (h *PaymentHandler) Totals(c *fiber.Ctx) error {
	var count int64
	if err := h.DB.Model(&models.Payment{}).Count(&count).Error; err != nil {
		return apperrors.Persistence(err)
	}

	var totalAmount float64
	err := h.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentSuccessful).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalAmount).Error
	if err != nil {
		return apperrors.Persistence(err)
	}

	return c.JSON(fiber.Map{
		"status":         "success",
		"total_payments": count,
		"total_amount":   totalAmount,
	})
}
