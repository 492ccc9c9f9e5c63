package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Wire shapes for generated study content. Field names match what the
// frontend and the stored summary blob use.

type GeneratedFlashcard struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	PageNo     int       `json:"page_no"`
	Difficulty string    `json:"difficulty"`
}

type KeyTopic struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	PageNumbers []int  `json:"pageNumbers"`
	Importance  string `json:"importance"` // high|medium|low
}

type LearningRecommendation struct {
	Type        string `json:"type"` // prerequisite|follow_up|practice|resource
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high|medium|low
}

type DocumentStats struct {
	TotalPages           int    `json:"totalPages"`
	EstimatedReadingTime int    `json:"estimatedReadingTime"` // minutes
	Difficulty           string `json:"difficulty"`           // beginner|intermediate|advanced
	Category             string `json:"category"`
}

type PDFSummary struct {
	OverallSummary          string                   `json:"overallSummary"`
	KeyTopics               []KeyTopic               `json:"keyTopics"`
	LearningRecommendations []LearningRecommendation `json:"learningRecommendations"`
	DocumentStats           DocumentStats            `json:"documentStats"`
	GeneratedAt             string                   `json:"generatedAt"`
}

var (
	ErrInvalidFlashcardJSON = errors.New("invalid JSON response from Gemini")
	ErrInvalidSummaryJSON   = errors.New("invalid summary JSON response from Gemini")
)

var (
	uuidRe          = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	arraySalvageRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectSalvageRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// CleanModelJSON strips optional markdown code fences from a model reply and
// returns the inner content.
func CleanModelJSON(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type rawFlashcard struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	PageNo     any    `json:"page_no"`
	Difficulty string `json:"difficulty"`
}

// ParseFlashcards turns a raw model reply into normalized flashcards. Fences
// are stripped first; if the remainder is not valid JSON the first [...]
// substring of the reply is tried before giving up.
func ParseFlashcards(text string) ([]GeneratedFlashcard, error) {
	var raw []rawFlashcard
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &raw); err != nil {
		salvaged := arraySalvageRe.FindString(text)
		if salvaged == "" {
			return nil, ErrInvalidFlashcardJSON
		}
		if err := json.Unmarshal([]byte(salvaged), &raw); err != nil {
			return nil, ErrInvalidFlashcardJSON
		}
	}

	cards := make([]GeneratedFlashcard, 0, len(raw))
	for _, rc := range raw {
		cards = append(cards, normalizeFlashcard(rc))
	}
	return cards, nil
}

func normalizeFlashcard(rc rawFlashcard) GeneratedFlashcard {
	card := GeneratedFlashcard{
		Question:   rc.Question,
		Answer:     rc.Answer,
		PageNo:     toPositiveInt(rc.PageNo, 1),
		Difficulty: normalizeDifficulty(rc.Difficulty),
	}
	if uuidRe.MatchString(rc.ID) {
		card.ID = uuid.MustParse(rc.ID)
	} else {
		card.ID = uuid.New()
	}
	if card.Question == "" {
		card.Question = "Question not available"
	}
	if card.Answer == "" {
		card.Answer = "Answer not available"
	}
	return card
}

func normalizeDifficulty(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "easy":
		return "easy"
	case "hard":
		return "hard"
	default:
		return "medium"
	}
}

// toPositiveInt coerces a JSON number or numeric string; anything missing,
// malformed or non-positive becomes the fallback.
func toPositiveInt(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func toNonNegativeInt(v any) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && i > 0 {
			return i
		}
	}
	return 0
}

type rawSummary struct {
	OverallSummary          string `json:"overallSummary"`
	KeyTopics               []struct {
		Topic       string `json:"topic"`
		Description string `json:"description"`
		PageNumbers any    `json:"pageNumbers"`
		Importance  string `json:"importance"`
	} `json:"keyTopics"`
	LearningRecommendations []struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	} `json:"learningRecommendations"`
	DocumentStats *struct {
		TotalPages           any    `json:"totalPages"`
		EstimatedReadingTime any    `json:"estimatedReadingTime"`
		Difficulty           string `json:"difficulty"`
		Category             string `json:"category"`
	} `json:"documentStats"`
}

// ParseSummary parses and validates a structured summary reply. Missing or
// invalid fields are replaced with defaults rather than rejected.
func ParseSummary(text string) (*PDFSummary, error) {
	var raw rawSummary
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &raw); err != nil {
		salvaged := objectSalvageRe.FindString(text)
		if salvaged == "" {
			return nil, ErrInvalidSummaryJSON
		}
		if err := json.Unmarshal([]byte(salvaged), &raw); err != nil {
			return nil, ErrInvalidSummaryJSON
		}
	}

	summary := &PDFSummary{
		OverallSummary:          raw.OverallSummary,
		KeyTopics:               []KeyTopic{},
		LearningRecommendations: []LearningRecommendation{},
		DocumentStats: DocumentStats{
			Difficulty: "intermediate",
			Category:   "General",
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if summary.OverallSummary == "" {
		summary.OverallSummary = "Summary not available"
	}

	for _, t := range raw.KeyTopics {
		summary.KeyTopics = append(summary.KeyTopics, KeyTopic{
			Topic:       t.Topic,
			Description: t.Description,
			PageNumbers: toIntSlice(t.PageNumbers),
			Importance:  normalizeLevel(t.Importance, "medium"),
		})
	}

	for _, r := range raw.LearningRecommendations {
		summary.LearningRecommendations = append(summary.LearningRecommendations, LearningRecommendation{
			Type:        normalizeRecommendationType(r.Type),
			Title:       r.Title,
			Description: r.Description,
			Priority:    normalizeLevel(r.Priority, "medium"),
		})
	}

	if raw.DocumentStats != nil {
		summary.DocumentStats.TotalPages = toNonNegativeInt(raw.DocumentStats.TotalPages)
		summary.DocumentStats.EstimatedReadingTime = toNonNegativeInt(raw.DocumentStats.EstimatedReadingTime)
		switch strings.ToLower(strings.TrimSpace(raw.DocumentStats.Difficulty)) {
		case "beginner":
			summary.DocumentStats.Difficulty = "beginner"
		case "advanced":
			summary.DocumentStats.Difficulty = "advanced"
		}
		if raw.DocumentStats.Category != "" {
			summary.DocumentStats.Category = raw.DocumentStats.Category
		}
	}

	return summary, nil
}

// FallbackSummary is returned when the model reply cannot be parsed at all.
func FallbackSummary() *PDFSummary {
	return &PDFSummary{
		OverallSummary:          "Unable to generate structured summary. Please try again.",
		KeyTopics:               []KeyTopic{},
		LearningRecommendations: []LearningRecommendation{},
		DocumentStats: DocumentStats{
			Difficulty: "intermediate",
			Category:   "General",
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func normalizeLevel(level, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high":
		return "high"
	case "medium":
		return "medium"
	case "low":
		return "low"
	default:
		return fallback
	}
}

func normalizeRecommendationType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "prerequisite", "follow_up", "practice", "resource":
		return strings.ToLower(strings.TrimSpace(t))
	default:
		return "resource"
	}
}

func toIntSlice(v any) []int {
	items, ok := v.([]any)
	if !ok {
		return []int{}
	}
	pages := make([]int, 0, len(items))
	for _, item := range items {
		if n := toNonNegativeInt(item); n > 0 {
			pages = append(pages, n)
		}
	}
	return pages
}
