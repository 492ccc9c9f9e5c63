package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
	"github.com/flashme/cardgenx-backend/utils"
	"github.com/flashme/cardgenx-backend/ws"
)

var ErrDocumentNotFound = errors.New("document not found")

// swapped in tests
var (
	generateText   = GeminiGenerateFromPDF
	downloadObject = utils.DownloadFileFromSupabase
)

// GenerateFlashcardsFromPDF runs one generation attempt and normalizes the
// reply. No retries; a failed attempt surfaces as an error.
func GenerateFlashcardsFromPDF(ctx context.Context, pdfData []byte) ([]GeneratedFlashcard, error) {
	text, err := generateText(ctx, pdfData, flashcardPrompt)
	if err != nil {
		return nil, err
	}
	return ParseFlashcards(text)
}

// GenerateSummaryFromPDF runs one generation attempt. A reply that cannot be
// parsed at all degrades to the static fallback summary instead of an error.
func GenerateSummaryFromPDF(ctx context.Context, pdfData []byte) (*PDFSummary, error) {
	text, err := generateText(ctx, pdfData, summaryPrompt)
	if err != nil {
		return nil, err
	}
	summary, err := ParseSummary(text)
	if err != nil {
		log.Println("summary reply not parseable, using fallback:", err)
		return FallbackSummary(), nil
	}
	return summary, nil
}

type ContentResult struct {
	Document            *models.Document   `json:"document"`
	Flashcards          []models.Flashcard `json:"flashcards"`
	Summary             *PDFSummary        `json:"summary"`
	GeneratedFlashcards bool               `json:"generated_flashcards"`
	GeneratedSummary    bool               `json:"generated_summary"`
}

// EnsureDocumentContent makes sure a visited document has both a flashcard
// set and a summary, generating whichever is missing and persisting the
// results. Flashcards are handled before the summary; when the summary step
// fails the already-saved flashcards stay in place and the error is returned.
// The existence check is read-then-write, so concurrent visits can still race
// to generate duplicates.
func EnsureDocumentContent(ctx context.Context, db *gorm.DB, docID, userID uuid.UUID) (*ContentResult, error) {
	var doc models.Document
	if err := db.First(&doc, "id = ? AND user_id = ?", docID, userID).Error; err != nil {
		return nil, ErrDocumentNotFound
	}

	result := &ContentResult{Document: &doc}

	var existingCards []models.Flashcard
	if err := db.Where("document_id = ?", docID).
		Order("page_no ASC, created_at ASC").
		Find(&existingCards).Error; err != nil {
		return result, fmt.Errorf("cannot load flashcards: %w", err)
	}

	var existingSummaries []models.Summary
	if err := db.Where("document_id = ?", docID).
		Limit(1).
		Find(&existingSummaries).Error; err != nil {
		return result, fmt.Errorf("cannot load summary: %w", err)
	}

	needsFlashcards := len(existingCards) == 0
	needsSummary := len(existingSummaries) == 0

	result.Flashcards = existingCards
	if !needsSummary {
		var summary PDFSummary
		if err := json.Unmarshal(existingSummaries[0].SummaryData, &summary); err != nil {
			return result, fmt.Errorf("stored summary is corrupt: %w", err)
		}
		result.Summary = &summary
	}

	if !needsFlashcards && !needsSummary {
		return result, nil
	}

	ws.SendStatusUpdate(docID.String(), "processing", 0.1, "")

	pdfData, err := downloadObject(doc.FilePath)
	if err != nil {
		ws.SendStatusUpdate(docID.String(), "error", 0, err.Error())
		return result, fmt.Errorf("failed to download PDF: %w", err)
	}

	if needsFlashcards {
		ws.SendStatusUpdate(docID.String(), "generating_flashcards", 0.3, "")
		generated, err := GenerateFlashcardsFromPDF(ctx, pdfData)
		if err != nil {
			ws.SendStatusUpdate(docID.String(), "error", 0, err.Error())
			return result, fmt.Errorf("failed to generate flashcards: %w", err)
		}

		rows := make([]models.Flashcard, 0, len(generated))
		for _, card := range generated {
			rows = append(rows, models.Flashcard{
				ID:         card.ID,
				DocumentID: docID,
				UserID:     doc.UserID,
				Question:   card.Question,
				Answer:     card.Answer,
				PageNo:     card.PageNo,
				Difficulty: card.Difficulty,
			})
		}
		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				ws.SendStatusUpdate(docID.String(), "error", 0, err.Error())
				return result, fmt.Errorf("failed to save flashcards: %w", err)
			}
		}
		result.Flashcards = rows
		result.GeneratedFlashcards = true
	}

	if needsSummary {
		ws.SendStatusUpdate(docID.String(), "generating_summary", 0.7, "")
		summary, err := GenerateSummaryFromPDF(ctx, pdfData)
		if err != nil {
			ws.SendStatusUpdate(docID.String(), "error", 0, err.Error())
			return result, fmt.Errorf("failed to generate summary: %w", err)
		}

		data, err := json.Marshal(summary)
		if err != nil {
			return result, fmt.Errorf("cannot serialize summary: %w", err)
		}
		row := models.Summary{
			ID:          uuid.New(),
			DocumentID:  docID,
			UserID:      userID,
			SummaryData: datatypes.JSON(data),
		}
		// the generated summary is still returned when the insert fails
		if err := db.Create(&row).Error; err != nil {
			log.Println("failed to save summary:", err)
		}
		result.Summary = summary
		result.GeneratedSummary = true
	}

	ws.SendStatusUpdate(docID.String(), "completed", 1, "")
	return result, nil
}
