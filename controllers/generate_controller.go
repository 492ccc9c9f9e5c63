package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flashme/cardgenx-backend/services"
)

// swapped in tests
var (
	generateFlashcards = services.GenerateFlashcardsFromPDF
	generateSummary    = services.GenerateSummaryFromPDF
)

type GeneratePayload struct {
	PDFBase64 string `json:"pdfBase64"`
}

// GenerateFlashcards accepts a base64 PDF and returns normalized flashcards.
// POST /api/generate-flashcards
func GenerateFlashcards(c *gin.Context) {
	var payload GeneratePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.PDFBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF base64 data is required"})
		return
	}

	pdfData, err := base64.StdEncoding.DecodeString(payload.PDFBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate flashcards",
			"details": "invalid base64 payload",
		})
		return
	}

	flashcards, err := generateFlashcards(c.Request.Context(), pdfData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate flashcards",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flashcards": flashcards,
		"total":      len(flashcards),
	})
}

// GenerateSummary accepts a base64 PDF and returns the structured summary.
// An unparseable model reply still answers 200 with the fallback summary.
// POST /api/generate-summary
func GenerateSummary(c *gin.Context) {
	var payload GeneratePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.PDFBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF base64 data is required"})
		return
	}

	pdfData, err := base64.StdEncoding.DecodeString(payload.PDFBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	summary, err := generateSummary(c.Request.Context(), pdfData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
