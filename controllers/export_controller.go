package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
	"github.com/flashme/cardgenx-backend/services"
)

// ExportDocument renders the document's study material into a downloadable
// PDF. An empty request body exports everything with default options.
// POST /api/user/documents/:id/export
func ExportDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var document models.Document
	if err := db.First(&document, "id = ? AND user_id = ?", docID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	opts := services.DefaultExportOptions()
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export options"})
			return
		}
	}
	if !opts.HasSection() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one section must be selected"})
		return
	}

	var flashcards []models.Flashcard
	if opts.IncludeFlashcards {
		if err := db.Where("document_id = ?", docID).
			Order("page_no ASC, created_at ASC").
			Find(&flashcards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load flashcards"})
			return
		}
	}

	var summary *services.PDFSummary
	if opts.IncludeSummary {
		var row models.Summary
		if err := db.Where("document_id = ?", docID).
			Order("created_at DESC").
			First(&row).Error; err == nil {
			var parsed services.PDFSummary
			if err := json.Unmarshal(row.SummaryData, &parsed); err == nil {
				summary = &parsed
			}
		}
	}

	pdfBytes, err := services.BuildExportPDF(document, flashcards, summary, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate export", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName(document.FileName)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
