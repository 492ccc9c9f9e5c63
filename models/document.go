package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User     User      `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	FileName string    `gorm:"size:255;not null" json:"file_name"`
	// Object path inside the storage bucket, e.g. uploads/1712345678901-notes.pdf
	FilePath  string    `gorm:"type:text;not null" json:"file_path"`
	FileSize  int64     `json:"file_size"` // bytes
	Pages     int       `json:"pages"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
