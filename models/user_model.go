package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleDonor   UserRole = "donor"
	RoleCreator UserRole = "creator"
	RoleAdmin   UserRole = "admin"
)

// ParseUserRole is the single place role strings become typed values.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleDonor, RoleCreator, RoleAdmin:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("invalid user role: %q", s)
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"size:50;not null;unique" json:"username"`
	Email        string    `gorm:"size:100;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         UserRole  `gorm:"size:20;not null;default:'donor'" json:"role"`
	ProfileImage *string   `gorm:"size:255" json:"profile_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
