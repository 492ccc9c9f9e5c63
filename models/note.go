package models

import (
	"time"

	"github.com/google/uuid"
)

// One note per user and document, written by the notes editor tab.
type Note struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notes_user_doc" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notes_user_doc" json:"document_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
