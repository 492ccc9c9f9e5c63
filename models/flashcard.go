package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Flashcard rows are bulk-inserted by the generation pipeline and never
// edited afterwards, except for the starred flag. Deleting a document does
// not remove its flashcards, so no FK constraint is declared here.
type Flashcard struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	PageNo     int       `gorm:"default:1" json:"page_no"`
	Difficulty string    `gorm:"size:20;default:'medium'" json:"difficulty"` // easy|medium|hard
	Starred    bool      `gorm:"default:false" json:"starred"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
