package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
)

// GetDocumentNote returns the user's note for a document. A document with no
// saved note yields an empty-content response rather than a 404 so the client
// can always render the editor.
// GET /api/user/documents/:id/note
func GetDocumentNote(c *gin.Context) {
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

	var note models.Note
	if err := db.Where("user_id = ? AND document_id = ?", userID, docID).First(&note).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"document_id": docID, "content": ""})
		return
	}

	c.JSON(http.StatusOK, note)
}

type SaveNoteInput struct {
	Content string `json:"content"`
}

// SaveDocumentNote creates or replaces the user's note for a document.
// PUT /api/user/documents/:id/note
func SaveDocumentNote(c *gin.Context) {
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

	var input SaveNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var note models.Note
	err = db.Where("user_id = ? AND document_id = ?", userID, docID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		note = models.Note{
			UserID:     userID,
			DocumentID: docID,
			Content:    input.Content,
		}
		if err := db.Create(&note).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save note"})
			return
		}
		c.JSON(http.StatusOK, note)
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load note"})
		return
	}

	note.Content = input.Content
	if err := db.Save(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save note"})
		return
	}

	c.JSON(http.StatusOK, note)
}
