package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/waliuddin1105/crowdfund/apperrors"
	config "github.com/waliuddin1105/crowdfund/configs"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

type RegisterRequest struct {
	Username     string  `json:"username" validate:"required,min=3,max=50"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6"`
	Role         string  `json:"role" validate:"required"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		Role:         role,
		ProfileImage: req.ProfileImage,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return apperrors.Persistence(err)
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("a user with this username or email already exists")
		}
		return apperrors.Persistence(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return apperrors.Validation(err.Error())
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "incorrect email or password")
	}
	if !user.CheckPassword(req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "incorrect email or password")
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return apperrors.Persistence(err)
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"access_token": signed,
		"user":         user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Stateless JWT: nothing to revoke server-side.
	return c.JSON(fiber.Map{"status": "success", "message": "logged out"})
}
