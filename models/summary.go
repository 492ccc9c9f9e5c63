package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Summary holds the structured digest for one document. SummaryData is the
// serialized digest (overall summary, key topics, learning recommendations,
// document stats); the row is written once and never updated. Document
// deletion does not cascade here either.
type Summary struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	SummaryData datatypes.JSON `gorm:"not null" json:"summary_data"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Summary) TableName() string { return "pdf_summaries" }
