package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/middleware"
	"github.com/flashme/cardgenx-backend/models"
)

func flashcardTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Flashcard{}))
	return db
}

func flashcardTestRouter(db *gorm.DB, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID.String())
	})
	r.Use(middleware.DBMiddleware(db))
	r.PATCH("/flashcards/:id/star", ToggleFlashcardStar)
	return r
}

func TestToggleFlashcardStarMatchesStoredState(t *testing.T) {
	db := flashcardTestDB(t)
	userID := uuid.New()
	card := models.Flashcard{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		UserID:     userID,
		Question:   "Q",
		Answer:     "A",
		PageNo:     1,
		Difficulty: "medium",
	}
	assert.NoError(t, db.Create(&card).Error)

	r := flashcardTestRouter(db, userID)

	toggle := func() models.Flashcard {
		req := httptest.NewRequest(http.MethodPatch, "/flashcards/"+card.ID.String()+"/star", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Flashcard models.Flashcard `json:"flashcard"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Flashcard
	}

	// the response must report the same state the row now holds
	got := toggle()
	assert.True(t, got.Starred)

	var stored models.Flashcard
	assert.NoError(t, db.First(&stored, "id = ?", card.ID).Error)
	assert.True(t, stored.Starred)

	got = toggle()
	assert.False(t, got.Starred)
	assert.NoError(t, db.First(&stored, "id = ?", card.ID).Error)
	assert.False(t, stored.Starred)
}

func TestToggleFlashcardStarNotOwned(t *testing.T) {
	db := flashcardTestDB(t)
	owner := uuid.New()
	card := models.Flashcard{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		UserID:     owner,
		Question:   "Q",
		Answer:     "A",
	}
	assert.NoError(t, db.Create(&card).Error)

	r := flashcardTestRouter(db, uuid.New())
	req := httptest.NewRequest(http.MethodPatch, "/flashcards/"+card.ID.String()+"/star", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
