package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
)

type ChatMessageInput struct {
	Message string `json:"message" binding:"required"`
}

// SendChatMessage accepts a chat message about a document and returns a
// canned assistant reply. Conversational answering over the document body is
// not implemented yet; the endpoint exists so the chat tab has a stable
// contract to build against.
// POST /api/user/documents/:id/chat
func SendChatMessage(c *gin.Context) {
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

	var input ChatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":       "assistant",
		"content":    "Chat about \"" + document.FileName + "\" is coming soon. In the meantime, try the flashcards and summary tabs.",
		"created_at": time.Now(),
	})
}
