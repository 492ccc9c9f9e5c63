package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
	"github.com/flashme/cardgenx-backend/services"
)

// GetFlashcardsByDocument lists a document's flashcards, optionally filtered
// by difficulty and sorted by difficulty or page number.
// GET /api/user/documents/:id/flashcards?difficulty=&sort_by=&order=
func GetFlashcardsByDocument(c *gin.Context) {
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

	var flashcards []models.Flashcard
	if err := db.Where("document_id = ?", docID).
		Order("page_no ASC, created_at ASC").
		Find(&flashcards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load flashcards"})
		return
	}

	cards := services.SortCards(
		services.FilterCards(flashcards, c.Query("difficulty")),
		c.Query("sort_by"),
		c.Query("order"),
	)

	c.JSON(http.StatusOK, gin.H{
		"data":  cards,
		"count": len(cards),
	})
}

// ToggleFlashcardStar flips the starred flag on one of the user's cards.
// PATCH /api/user/flashcards/:id/star
func ToggleFlashcardStar(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flashcard ID"})
		return
	}

	var card models.Flashcard
	if err := db.First(&card, "id = ? AND user_id = ?", cardID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flashcard not found"})
		return
	}

	starred := !card.Starred
	if err := db.Model(&card).Update("starred", starred).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flashcard"})
		return
	}
	card.Starred = starred

	c.JSON(http.StatusOK, gin.H{"flashcard": card})
}
