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

// GetDocumentSummary returns the stored structured summary for a document.
// GET /api/user/documents/:id/summary
func GetDocumentSummary(c *gin.Context) {
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

	var summary models.Summary
	if err := db.Where("document_id = ?", docID).
		Order("created_at DESC").
		First(&summary).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return
	}

	var parsed services.PDFSummary
	if err := json.Unmarshal(summary.SummaryData, &parsed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read summary data"})
		return
	}

	c.JSON(http.StatusOK, parsed)
}
