package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/jung-kurt/gofpdf"

	"github.com/flashme/cardgenx-backend/models"
)

type FlashcardExportOptions struct {
	IncludeStarredOnly bool     `json:"includeStarredOnly"`
	IncludeDifficulty  bool     `json:"includeDifficulty"`
	IncludePageNumbers bool     `json:"includePageNumbers"`
	DifficultyFilter   []string `json:"difficultyFilter"`
}

type SummaryExportOptions struct {
	IncludeOverallSummary          bool     `json:"includeOverallSummary"`
	IncludeKeyTopics               bool     `json:"includeKeyTopics"`
	IncludeLearningRecommendations bool     `json:"includeLearningRecommendations"`
	IncludeDocumentStats           bool     `json:"includeDocumentStats"`
	TopicImportanceFilter          []string `json:"topicImportanceFilter"`
	RecommendationTypeFilter       []string `json:"recommendationTypeFilter"`
}

type ExportOptions struct {
	IncludeDocumentInfo bool                   `json:"includeDocumentInfo"`
	IncludeFlashcards   bool                   `json:"includeFlashcards"`
	IncludeSummary      bool                   `json:"includeSummary"`
	FlashcardOptions    FlashcardExportOptions `json:"flashcardOptions"`
	SummaryOptions      SummaryExportOptions   `json:"summaryOptions"`
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		IncludeDocumentInfo: true,
		IncludeFlashcards:   true,
		IncludeSummary:      true,
		FlashcardOptions: FlashcardExportOptions{
			IncludeDifficulty:  true,
			IncludePageNumbers: true,
			DifficultyFilter:   []string{"easy", "medium", "hard"},
		},
		SummaryOptions: SummaryExportOptions{
			IncludeOverallSummary:          true,
			IncludeKeyTopics:               true,
			IncludeLearningRecommendations: true,
			IncludeDocumentStats:           true,
			TopicImportanceFilter:          []string{"high", "medium", "low"},
			RecommendationTypeFilter:       []string{"prerequisite", "follow_up", "practice", "resource"},
		},
	}
}

// HasSection reports whether at least one section is selected.
func (o ExportOptions) HasSection() bool {
	return o.IncludeDocumentInfo || o.IncludeFlashcards || o.IncludeSummary
}

// ExportFileName builds the download filename from the document name.
func ExportFileName(fileName string) string {
	base := strings.TrimSuffix(fileName, ".pdf")
	base = strings.TrimSuffix(base, ".PDF")
	return slug.Make(base) + "_export.pdf"
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

// ExportFlashcards applies the starred/difficulty options to the full set.
func ExportFlashcards(cards []models.Flashcard, opts FlashcardExportOptions) []models.Flashcard {
	selected := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		if opts.IncludeStarredOnly && !card.Starred {
			continue
		}
		if len(opts.DifficultyFilter) > 0 && !containsFold(opts.DifficultyFilter, card.Difficulty) {
			continue
		}
		selected = append(selected, card)
	}
	return selected
}

// BuildExportPDF renders the selected sections into an A4 PDF. The summary
// may be nil, in which case its sections are skipped.
func BuildExportPDF(doc models.Document, cards []models.Flashcard, summary *PDFSummary, opts ExportOptions) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	addText := func(text string, size float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.MultiCell(0, size*0.5, text, "", "L", false)
		pdf.Ln(2)
	}

	addText("Export: "+doc.FileName, 20, true)
	pdf.Ln(4)

	if opts.IncludeDocumentInfo {
		addText("Document Information", 16, true)
		addText("File Name: "+doc.FileName, 12, false)
		addText("Created: "+doc.CreatedAt.Format("2006-01-02"), 12, false)
		if doc.Pages > 0 {
			addText(fmt.Sprintf("Pages: %d", doc.Pages), 12, false)
		}
		pdf.Ln(4)
	}

	if opts.IncludeFlashcards {
		selected := ExportFlashcards(cards, opts.FlashcardOptions)
		if len(selected) > 0 {
			addText("Flashcards", 16, true)
			for i, card := range selected {
				addText(fmt.Sprintf("Card %d", i+1), 14, true)
				addText("Q: "+card.Question, 12, false)
				addText("A: "+card.Answer, 12, false)
				if opts.FlashcardOptions.IncludeDifficulty {
					addText("Difficulty: "+card.Difficulty, 12, false)
				}
				if opts.FlashcardOptions.IncludePageNumbers {
					addText(fmt.Sprintf("Page: %d", card.PageNo), 12, false)
				}
				if card.Starred {
					addText("* Starred", 10, false)
				}
				pdf.Ln(2)
			}
			pdf.Ln(4)
		}
	}

	if opts.IncludeSummary && summary != nil {
		addText("Summary", 16, true)

		if opts.SummaryOptions.IncludeOverallSummary {
			addText("Overall Summary", 14, true)
			addText(summary.OverallSummary, 12, false)
			pdf.Ln(4)
		}

		if opts.SummaryOptions.IncludeKeyTopics && len(summary.KeyTopics) > 0 {
			addText("Key Topics", 14, true)
			for _, topic := range summary.KeyTopics {
				if len(opts.SummaryOptions.TopicImportanceFilter) > 0 &&
					!containsFold(opts.SummaryOptions.TopicImportanceFilter, topic.Importance) {
					continue
				}
				addText(fmt.Sprintf("- %s (%s)", topic.Topic, strings.ToUpper(topic.Importance)), 12, true)
				addText("  "+topic.Description, 12, false)
				addText("  Pages: "+joinPages(topic.PageNumbers), 12, false)
			}
			pdf.Ln(4)
		}

		if opts.SummaryOptions.IncludeLearningRecommendations && len(summary.LearningRecommendations) > 0 {
			addText("Learning Recommendations", 14, true)
			for _, rec := range summary.LearningRecommendations {
				if len(opts.SummaryOptions.RecommendationTypeFilter) > 0 &&
					!containsFold(opts.SummaryOptions.RecommendationTypeFilter, rec.Type) {
					continue
				}
				addText(fmt.Sprintf("- %s (%s) - Priority: %s", rec.Title, strings.ToUpper(rec.Type), strings.ToUpper(rec.Priority)), 12, true)
				addText("  "+rec.Description, 12, false)
			}
			pdf.Ln(4)
		}

		if opts.SummaryOptions.IncludeDocumentStats {
			addText("Document Statistics", 14, true)
			addText(fmt.Sprintf("Total Pages: %d", summary.DocumentStats.TotalPages), 12, false)
			addText(fmt.Sprintf("Estimated Reading Time: %d minutes", summary.DocumentStats.EstimatedReadingTime), 12, false)
			addText("Difficulty Level: "+summary.DocumentStats.Difficulty, 12, false)
			addText("Category: "+summary.DocumentStats.Category, 12, false)
			if summary.GeneratedAt != "" {
				if generated, err := time.Parse(time.RFC3339, summary.GeneratedAt); err == nil {
					addText("Generated: "+generated.Format("2006-01-02"), 12, false)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}

func joinPages(pages []int) string {
	if len(pages) == 0 {
		return "-"
	}
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ", ")
}
