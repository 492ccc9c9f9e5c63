package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCleanModelJSON(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, CleanModelJSON("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, CleanModelJSON("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, CleanModelJSON(`[{"a":1}]`))
	assert.Equal(t, "", CleanModelJSON("   "))
}

func TestParseFlashcardsFenced(t *testing.T) {
	cards, err := ParseFlashcards("```json\n[{\"question\":\"What is Go?\",\"answer\":\"A language\"}]\n```")
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, "What is Go?", cards[0].Question)
	assert.Equal(t, "A language", cards[0].Answer)
	assert.Equal(t, "medium", cards[0].Difficulty)
	assert.Equal(t, 1, cards[0].PageNo)
	assert.NotEqual(t, uuid.Nil, cards[0].ID)
}

func TestParseFlashcardsSalvagesArray(t *testing.T) {
	text := "Here are your flashcards:\n[{\"question\":\"Q\",\"answer\":\"A\"}]\nEnjoy!"
	cards, err := ParseFlashcards(text)
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestParseFlashcardsInvalid(t *testing.T) {
	_, err := ParseFlashcards("sorry, I cannot help with that")
	assert.ErrorIs(t, err, ErrInvalidFlashcardJSON)
}

func TestParseFlashcardsDefaults(t *testing.T) {
	text := `[
		{"id":"not-a-uuid","question":"","answer":"","page_no":-3,"difficulty":"extreme"},
		{"id":"0b9fbd59-3f16-4b21-8ae5-91a2c2a4d1aa","question":"Q","answer":"A","page_no":"7","difficulty":"HARD"}
	]`
	cards, err := ParseFlashcards(text)
	assert.NoError(t, err)
	assert.Len(t, cards, 2)

	assert.Equal(t, "Question not available", cards[0].Question)
	assert.Equal(t, "Answer not available", cards[0].Answer)
	assert.Equal(t, 1, cards[0].PageNo)
	assert.Equal(t, "medium", cards[0].Difficulty)
	assert.NotEqual(t, uuid.Nil, cards[0].ID)

	assert.Equal(t, uuid.MustParse("0b9fbd59-3f16-4b21-8ae5-91a2c2a4d1aa"), cards[1].ID)
	assert.Equal(t, 7, cards[1].PageNo)
	assert.Equal(t, "hard", cards[1].Difficulty)
}

func TestParseSummaryDefaults(t *testing.T) {
	summary, err := ParseSummary(`{}`)
	assert.NoError(t, err)
	assert.Equal(t, "Summary not available", summary.OverallSummary)
	assert.Empty(t, summary.KeyTopics)
	assert.Empty(t, summary.LearningRecommendations)
	assert.Equal(t, "intermediate", summary.DocumentStats.Difficulty)
	assert.Equal(t, "General", summary.DocumentStats.Category)
	assert.Equal(t, 0, summary.DocumentStats.TotalPages)
	assert.NotEmpty(t, summary.GeneratedAt)
}

func TestParseSummaryNormalizesFields(t *testing.T) {
	text := "```json\n" + `{
		"overallSummary": "A short overview.",
		"keyTopics": [
			{"topic":"Goroutines","description":"Concurrency","pageNumbers":[1,"2",-4],"importance":"CRITICAL"}
		],
		"learningRecommendations": [
			{"type":"homework","title":"Practice","description":"Do exercises","priority":"HIGH"}
		],
		"documentStats": {"totalPages":"12","estimatedReadingTime":30,"difficulty":"Advanced","category":"Programming"}
	}` + "\n```"

	summary, err := ParseSummary(text)
	assert.NoError(t, err)
	assert.Equal(t, "A short overview.", summary.OverallSummary)

	assert.Len(t, summary.KeyTopics, 1)
	assert.Equal(t, []int{1, 2}, summary.KeyTopics[0].PageNumbers)
	assert.Equal(t, "medium", summary.KeyTopics[0].Importance)

	assert.Len(t, summary.LearningRecommendations, 1)
	assert.Equal(t, "resource", summary.LearningRecommendations[0].Type)
	assert.Equal(t, "high", summary.LearningRecommendations[0].Priority)

	assert.Equal(t, 12, summary.DocumentStats.TotalPages)
	assert.Equal(t, 30, summary.DocumentStats.EstimatedReadingTime)
	assert.Equal(t, "advanced", summary.DocumentStats.Difficulty)
	assert.Equal(t, "Programming", summary.DocumentStats.Category)
}

func TestParseSummarySalvagesObject(t *testing.T) {
	summary, err := ParseSummary("Sure! {\"overallSummary\":\"Salvaged\"} hope that helps")
	assert.NoError(t, err)
	assert.Equal(t, "Salvaged", summary.OverallSummary)
}

func TestParseSummaryInvalid(t *testing.T) {
	_, err := ParseSummary("no json at all")
	assert.ErrorIs(t, err, ErrInvalidSummaryJSON)
}

func TestFallbackSummary(t *testing.T) {
	summary := FallbackSummary()
	assert.Equal(t, "Unable to generate structured summary. Please try again.", summary.OverallSummary)
	assert.Equal(t, "intermediate", summary.DocumentStats.Difficulty)
	assert.Equal(t, "General", summary.DocumentStats.Category)
}
