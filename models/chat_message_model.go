package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role    string    `gorm:"size:20;not null" json:"role"`
	Message string    `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

// KnowledgeDocument is a row of the chatbot's retrieval corpus. The
// embedding is stored as little-endian float32 bytes and loaded into the
// in-memory index at startup.
type KnowledgeDocument struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Embedding []byte    `gorm:"type:bytea" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
