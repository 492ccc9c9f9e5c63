package services

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/flashme/cardgenx-backend/models"
)

var difficultyRank = map[string]int{
	models.DifficultyEasy:   0,
	models.DifficultyMedium: 1,
	models.DifficultyHard:   2,
}

// FilterCards keeps only the cards whose difficulty matches the filter,
// case-insensitively. "all" (or empty) keeps everything.
func FilterCards(cards []models.Flashcard, difficulty string) []models.Flashcard {
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	if difficulty == "" || difficulty == "all" {
		return append([]models.Flashcard{}, cards...)
	}
	filtered := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		if strings.ToLower(card.Difficulty) == difficulty {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// SortCards orders cards by difficulty or page number. Unknown sort fields
// leave the slice order untouched.
func SortCards(cards []models.Flashcard, sortBy, order string) []models.Flashcard {
	sorted := append([]models.Flashcard{}, cards...)
	desc := strings.EqualFold(order, "desc")

	switch strings.ToLower(sortBy) {
	case "difficulty":
		sort.SliceStable(sorted, func(i, j int) bool {
			ri := difficultyRank[strings.ToLower(sorted[i].Difficulty)]
			rj := difficultyRank[strings.ToLower(sorted[j].Difficulty)]
			if desc {
				return ri > rj
			}
			return ri < rj
		})
	case "page", "page_no":
		sort.SliceStable(sorted, func(i, j int) bool {
			if desc {
				return sorted[i].PageNo > sorted[j].PageNo
			}
			return sorted[i].PageNo < sorted[j].PageNo
		})
	}
	return sorted
}

// StudySession tracks one user's position in the flashcard review for a
// document: a filtered/sorted view over the full set, the current index with
// wraparound, and whether the answer is revealed. Nothing here is persisted
// across sessions.
type StudySession struct {
	mu       sync.Mutex
	cards    []models.Flashcard
	filter   string
	sortBy   string
	order    string
	index    int
	revealed bool
}

type StudyState struct {
	Filter   string             `json:"filter"`
	SortBy   string             `json:"sort_by,omitempty"`
	Order    string             `json:"order,omitempty"`
	Index    int                `json:"index"`
	Total    int                `json:"total"`
	Revealed bool               `json:"revealed"`
	Current  *models.Flashcard  `json:"current,omitempty"`
	Cards    []models.Flashcard `json:"cards"`
}

func NewStudySession(cards []models.Flashcard) *StudySession {
	return &StudySession{
		cards:  append([]models.Flashcard{}, cards...),
		filter: "all",
		order:  "asc",
	}
}

func (s *StudySession) view() []models.Flashcard {
	return SortCards(FilterCards(s.cards, s.filter), s.sortBy, s.order)
}

// SetView applies filter and sort settings. Changing the filter resets the
// current index and hides the answer; re-sorting keeps the position.
func (s *StudySession) SetView(filter, sortBy, order string) StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = "all"
	}
	if filter != s.filter {
		s.index = 0
		s.revealed = false
	}
	s.filter = filter
	s.sortBy = strings.ToLower(sortBy)
	if strings.EqualFold(order, "desc") {
		s.order = "desc"
	} else {
		s.order = "asc"
	}
	return s.stateLocked()
}

// Next advances to the following card, wrapping to the first card after the
// last. Navigation always hides the answer again.
func (s *StudySession) Next() StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.view()); n > 0 {
		s.index = (s.index + 1) % n
	}
	s.revealed = false
	return s.stateLocked()
}

// Prev moves to the preceding card, wrapping to the last card from the first.
func (s *StudySession) Prev() StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.view()); n > 0 {
		s.index = (s.index - 1 + n) % n
	}
	s.revealed = false
	return s.stateLocked()
}

// ToggleReveal flips the answer-revealed flag without moving.
func (s *StudySession) ToggleReveal() StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revealed = !s.revealed
	return s.stateLocked()
}

// Shuffle randomizes the card order and starts over from the first card.
func (s *StudySession) Shuffle() StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.index = 0
	s.revealed = false
	return s.stateLocked()
}

// Reset clears the position and reveal state but keeps filter and sort.
func (s *StudySession) Reset() StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = 0
	s.revealed = false
	return s.stateLocked()
}

func (s *StudySession) State() StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *StudySession) stateLocked() StudyState {
	view := s.view()
	if s.index >= len(view) {
		s.index = 0
	}
	state := StudyState{
		Filter:   s.filter,
		SortBy:   s.sortBy,
		Order:    s.order,
		Index:    s.index,
		Total:    len(view),
		Revealed: s.revealed,
		Cards:    view,
	}
	if len(view) > 0 {
		card := view[s.index]
		state.Current = &card
	}
	return state
}

// StudyStore keeps in-memory sessions keyed by user and document.
type StudyStore struct {
	mu       sync.RWMutex
	sessions map[string]*StudySession
}

var Sessions = &StudyStore{sessions: make(map[string]*StudySession)}

func studyKey(userID, docID string) string {
	return userID + "/" + docID
}

// Start creates (or replaces) the session for a user and document.
func (st *StudyStore) Start(userID, docID string, cards []models.Flashcard) *StudySession {
	st.mu.Lock()
	defer st.mu.Unlock()

	session := NewStudySession(cards)
	st.sessions[studyKey(userID, docID)] = session
	return session
}

func (st *StudyStore) Get(userID, docID string) (*StudySession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[studyKey(userID, docID)]
	return session, ok
}

func (st *StudyStore) Delete(userID, docID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, studyKey(userID, docID))
}
