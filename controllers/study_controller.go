package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/models"
	"github.com/flashme/cardgenx-backend/services"
)

// StartStudySession loads the document's flashcards into a fresh in-memory
// review session, replacing any previous one for the same document.
// POST /api/user/documents/:id/study
func StartStudySession(c *gin.Context) {
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

	session := services.Sessions.Start(userID.String(), docID.String(), flashcards)
	c.JSON(http.StatusOK, session.State())
}

func studySession(c *gin.Context) (*services.StudySession, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return nil, false
	}
	session, ok := services.Sessions.Get(userID.String(), docID.String())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No study session for this document"})
		return nil, false
	}
	return session, true
}

// GET /api/user/documents/:id/study
func GetStudySession(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.State())
}

type StudyViewInput struct {
	Difficulty string `json:"difficulty"` // all|easy|medium|hard
	SortBy     string `json:"sort_by"`    // difficulty|page
	Order      string `json:"order"`      // asc|desc
}

// PUT /api/user/documents/:id/study/view
func SetStudyView(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}

	var input StudyViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.SetView(input.Difficulty, input.SortBy, input.Order))
}

// POST /api/user/documents/:id/study/next
func StudyNext(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Next())
}

// POST /api/user/documents/:id/study/prev
func StudyPrev(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Prev())
}

// POST /api/user/documents/:id/study/reveal
func StudyReveal(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.ToggleReveal())
}

// POST /api/user/documents/:id/study/shuffle
func StudyShuffle(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Shuffle())
}

// POST /api/user/documents/:id/study/reset
func StudyReset(c *gin.Context) {
	session, ok := studySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Reset())
}
