package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/middleware"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "user": user})
}

type UpdateProfileRequest struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role         *string `json:"role,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	authedID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", authedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return apperrors.Persistence(err)
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role, err := models.ParseUserRole(*req.Role)
		if err != nil {
			return apperrors.Validation(err.Error())
		}
		user.Role = role
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return apperrors.Persistence(err)
		}
	}

	if err := h.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("a user with this username or email already exists")
		}
		return apperrors.Persistence(err)
	}

	return c.JSON(fiber.Map{"status": "success", "user": user})
}

func (h *UserHandler) Search(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return apperrors.Validation("enter a username to search")
	}

	var users []models.User
	if err := h.DB.Where("username ILIKE ?", "%"+username+"%").Find(&users).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "users": users})
}

func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return c.JSON(fiber.Map{"status": "success", "users": users})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	result := h.DB.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return apperrors.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("user not found")
	}
	return c.JSON(fiber.Map{"status": "success", "message": "user deleted"})
}
