package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/services"
)

// GetDocumentContent returns the document together with its flashcards and
// summary, generating whichever is missing on first visit.
// GET /api/user/documents/:id/content
func GetDocumentContent(c *gin.Context) {
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

	result, err := services.EnsureDocumentContent(c.Request.Context(), db, docID, userID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		// partial results (e.g. flashcards saved, summary failed) still go out
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process document",
			"details": err.Error(),
			"content": result,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
