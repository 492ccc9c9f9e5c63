package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/flashme/cardgenx-backend/models"
)

func testCards() []models.Flashcard {
	return []models.Flashcard{
		{ID: uuid.New(), Question: "Q1", Answer: "A1", PageNo: 3, Difficulty: "hard"},
		{ID: uuid.New(), Question: "Q2", Answer: "A2", PageNo: 1, Difficulty: "easy"},
		{ID: uuid.New(), Question: "Q3", Answer: "A3", PageNo: 2, Difficulty: "medium"},
		{ID: uuid.New(), Question: "Q4", Answer: "A4", PageNo: 2, Difficulty: "easy"},
	}
}

func TestFilterCards(t *testing.T) {
	cards := testCards()

	assert.Len(t, FilterCards(cards, "all"), 4)
	assert.Len(t, FilterCards(cards, ""), 4)
	assert.Len(t, FilterCards(cards, "easy"), 2)
	assert.Len(t, FilterCards(cards, "EASY"), 2)
	assert.Len(t, FilterCards(cards, "hard"), 1)
	assert.Empty(t, FilterCards(cards, "unknown"))
}

func TestSortCards(t *testing.T) {
	cards := testCards()

	byDifficulty := SortCards(cards, "difficulty", "asc")
	assert.Equal(t, "easy", byDifficulty[0].Difficulty)
	assert.Equal(t, "hard", byDifficulty[3].Difficulty)

	byDifficultyDesc := SortCards(cards, "difficulty", "desc")
	assert.Equal(t, "hard", byDifficultyDesc[0].Difficulty)

	byPage := SortCards(cards, "page", "asc")
	assert.Equal(t, 1, byPage[0].PageNo)
	assert.Equal(t, 3, byPage[3].PageNo)

	// unknown sort field keeps the incoming order
	unchanged := SortCards(cards, "bogus", "asc")
	assert.Equal(t, "Q1", unchanged[0].Question)

	// input slice is never mutated
	assert.Equal(t, "Q1", cards[0].Question)
}

func TestStudySessionNavigationWraps(t *testing.T) {
	session := NewStudySession(testCards())

	state := session.State()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 4, state.Total)
	assert.Equal(t, "Q1", state.Current.Question)

	state = session.Prev()
	assert.Equal(t, 3, state.Index)
	assert.Equal(t, "Q4", state.Current.Question)

	state = session.Next()
	assert.Equal(t, 0, state.Index)
}

func TestStudySessionRevealClearedOnMove(t *testing.T) {
	session := NewStudySession(testCards())

	assert.True(t, session.ToggleReveal().Revealed)
	assert.False(t, session.Next().Revealed)

	assert.True(t, session.ToggleReveal().Revealed)
	assert.False(t, session.ToggleReveal().Revealed)
}

func TestStudySessionFilterChangeResetsPosition(t *testing.T) {
	session := NewStudySession(testCards())

	session.Next()
	session.ToggleReveal()

	state := session.SetView("easy", "", "asc")
	assert.Equal(t, "easy", state.Filter)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 2, state.Total)
	assert.False(t, state.Revealed)

	// re-applying the same filter keeps the position
	session.Next()
	state = session.SetView("easy", "page", "asc")
	assert.Equal(t, 1, state.Index)
}

func TestStudySessionResetKeepsView(t *testing.T) {
	session := NewStudySession(testCards())

	session.SetView("easy", "page", "desc")
	session.Next()
	session.ToggleReveal()

	state := session.Reset()
	assert.Equal(t, 0, state.Index)
	assert.False(t, state.Revealed)
	assert.Equal(t, "easy", state.Filter)
	assert.Equal(t, "page", state.SortBy)
	assert.Equal(t, "desc", state.Order)
}

func TestStudySessionShuffleKeepsCards(t *testing.T) {
	cards := testCards()
	session := NewStudySession(cards)

	state := session.Shuffle()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 4, state.Total)

	seen := make(map[uuid.UUID]bool)
	for _, card := range state.Cards {
		seen[card.ID] = true
	}
	for _, card := range cards {
		assert.True(t, seen[card.ID])
	}
}

func TestStudySessionEmpty(t *testing.T) {
	session := NewStudySession(nil)

	state := session.Next()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 0, state.Total)
	assert.Nil(t, state.Current)
}

func TestStudyStore(t *testing.T) {
	store := &StudyStore{sessions: make(map[string]*StudySession)}

	_, ok := store.Get("u1", "d1")
	assert.False(t, ok)

	store.Start("u1", "d1", testCards())
	session, ok := store.Get("u1", "d1")
	assert.True(t, ok)
	assert.Equal(t, 4, session.State().Total)

	// sessions are scoped per user
	_, ok = store.Get("u2", "d1")
	assert.False(t, ok)

	store.Delete("u1", "d1")
	_, ok = store.Get("u1", "d1")
	assert.False(t, ok)
}
