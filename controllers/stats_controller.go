package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
)

type DifficultyStat struct {
	Difficulty string `json:"difficulty"`
	Count      int64  `json:"count"`
}

// GetDashboardOverview backs the home screen: library totals, a difficulty
// breakdown over the user's flashcards, and the most recent uploads.
// GET /api/user/dashboard
func GetDashboardOverview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var totalDocuments, totalFlashcards, starredFlashcards, totalNotes int64
	db.Model(&models.Document{}).Where("user_id = ?", userID).Count(&totalDocuments)
	db.Model(&models.Flashcard{}).Where("user_id = ?", userID).Count(&totalFlashcards)
	db.Model(&models.Flashcard{}).Where("user_id = ? AND starred = ?", userID, true).Count(&starredFlashcards)
	db.Model(&models.Note{}).Where("user_id = ?", userID).Count(&totalNotes)

	var documents30d int64
	db.Model(&models.Document{}).
		Where("user_id = ? AND created_at >= ?", userID, time.Now().AddDate(0, 0, -30)).
		Count(&documents30d)

	var byDifficulty []DifficultyStat
	db.Model(&models.Flashcard{}).
		Select("difficulty, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("difficulty").
		Scan(&byDifficulty)

	var recent []models.Document
	db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	c.JSON(http.StatusOK, gin.H{
		"total_documents":    totalDocuments,
		"total_flashcards":   totalFlashcards,
		"starred_flashcards": starredFlashcards,
		"total_notes":        totalNotes,
		"documents_30d":      documents30d,
		"by_difficulty":      byDifficulty,
		"recent_documents":   recent,
	})
}
