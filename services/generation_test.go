package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubGenerate(t *testing.T, reply string, err error) {
	t.Helper()
	prev := generateText
	generateText = func(ctx context.Context, pdfData []byte, prompt string) (string, error) {
		return reply, err
	}
	t.Cleanup(func() { generateText = prev })
}

func TestGenerateFlashcardsFromPDF(t *testing.T) {
	stubGenerate(t, `[{"question":"Q","answer":"A","page_no":2,"difficulty":"easy"}]`, nil)

	cards, err := GenerateFlashcardsFromPDF(context.Background(), []byte("%PDF"))
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, "easy", cards[0].Difficulty)
	assert.Equal(t, 2, cards[0].PageNo)
}

func TestGenerateFlashcardsFromPDFModelError(t *testing.T) {
	stubGenerate(t, "", errors.New("quota exceeded"))

	_, err := GenerateFlashcardsFromPDF(context.Background(), []byte("%PDF"))
	assert.EqualError(t, err, "quota exceeded")
}

func TestGenerateFlashcardsFromPDFBadReply(t *testing.T) {
	stubGenerate(t, "I am unable to read this document", nil)

	_, err := GenerateFlashcardsFromPDF(context.Background(), []byte("%PDF"))
	assert.ErrorIs(t, err, ErrInvalidFlashcardJSON)
}

func TestGenerateSummaryFromPDF(t *testing.T) {
	stubGenerate(t, `{"overallSummary":"Fine."}`, nil)

	summary, err := GenerateSummaryFromPDF(context.Background(), []byte("%PDF"))
	assert.NoError(t, err)
	assert.Equal(t, "Fine.", summary.OverallSummary)
}

func TestGenerateSummaryFromPDFFallsBack(t *testing.T) {
	stubGenerate(t, "no structured data here", nil)

	summary, err := GenerateSummaryFromPDF(context.Background(), []byte("%PDF"))
	assert.NoError(t, err)
	assert.Equal(t, "Unable to generate structured summary. Please try again.", summary.OverallSummary)
}

func TestGenerateSummaryFromPDFModelError(t *testing.T) {
	stubGenerate(t, "", errors.New("timeout"))

	_, err := GenerateSummaryFromPDF(context.Background(), []byte("%PDF"))
	assert.EqualError(t, err, "timeout")
}
