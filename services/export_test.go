package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/flashme/cardgenx-backend/models"
)

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "lecture-notes_export.pdf", ExportFileName("Lecture Notes.pdf"))
	assert.Equal(t, "machine-learning_export.pdf", ExportFileName("Machine Learning.PDF"))
	assert.Equal(t, "report_export.pdf", ExportFileName("report"))
}

func TestExportOptionsHasSection(t *testing.T) {
	assert.True(t, DefaultExportOptions().HasSection())
	assert.False(t, ExportOptions{}.HasSection())
	assert.True(t, ExportOptions{IncludeSummary: true}.HasSection())
}

func TestExportFlashcardsFilters(t *testing.T) {
	cards := []models.Flashcard{
		{Question: "Q1", Difficulty: "easy", Starred: true},
		{Question: "Q2", Difficulty: "hard"},
		{Question: "Q3", Difficulty: "medium", Starred: true},
	}

	all := ExportFlashcards(cards, FlashcardExportOptions{DifficultyFilter: []string{"easy", "medium", "hard"}})
	assert.Len(t, all, 3)

	starred := ExportFlashcards(cards, FlashcardExportOptions{
		IncludeStarredOnly: true,
		DifficultyFilter:   []string{"easy", "medium", "hard"},
	})
	assert.Len(t, starred, 2)

	hardOnly := ExportFlashcards(cards, FlashcardExportOptions{DifficultyFilter: []string{"HARD"}})
	assert.Len(t, hardOnly, 1)
	assert.Equal(t, "Q2", hardOnly[0].Question)

	// an empty filter list means no difficulty restriction
	noFilter := ExportFlashcards(cards, FlashcardExportOptions{})
	assert.Len(t, noFilter, 3)
}

func TestBuildExportPDF(t *testing.T) {
	doc := models.Document{
		ID:        uuid.New(),
		FileName:  "Lecture Notes.pdf",
		Pages:     12,
		CreatedAt: time.Now(),
	}
	cards := []models.Flashcard{
		{ID: uuid.New(), Question: "What is a goroutine?", Answer: "A lightweight thread", PageNo: 2, Difficulty: "easy", Starred: true},
	}
	summary := &PDFSummary{
		OverallSummary: "An overview of Go concurrency.",
		KeyTopics: []KeyTopic{
			{Topic: "Goroutines", Description: "Lightweight threads", PageNumbers: []int{1, 2}, Importance: "high"},
		},
		LearningRecommendations: []LearningRecommendation{
			{Type: "practice", Title: "Write a worker pool", Description: "Hands-on exercise", Priority: "high"},
		},
		DocumentStats: DocumentStats{TotalPages: 12, EstimatedReadingTime: 25, Difficulty: "intermediate", Category: "Programming"},
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	data, err := BuildExportPDF(doc, cards, summary, DefaultExportOptions())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildExportPDFWithoutSummary(t *testing.T) {
	doc := models.Document{ID: uuid.New(), FileName: "empty.pdf", CreatedAt: time.Now()}

	data, err := BuildExportPDF(doc, nil, nil, DefaultExportOptions())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
