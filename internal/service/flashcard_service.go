package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"study-service/internal/models"
	"study-service/internal/retention"
	"study-service/internal/scoring"
	"study-service/internal/storage"
)

const flashcardBlob = "flashcard-store"

type flashcardState struct {
	Current *models.FlashcardSet  `json:"current_set"`
	History []models.FlashcardSet `json:"flashcard_sets"`
	Cursor  int                   `json:"current_card_index"`
}

// FlashcardService owns the single active flashcard set, the bounded study
// cursor and the set history. Mirrors QuizService: invalid operations are
// silent no-ops.
type FlashcardService struct {
	mu    sync.Mutex
	store storage.BlobStore
	state flashcardState
}

func NewFlashcardService(ctx context.Context, store storage.BlobStore) (*FlashcardService, error) {
	s := &FlashcardService{store: store}
	if err := store.Load(ctx, flashcardBlob, &s.state); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	s.state.History = retention.Prune(s.state.History, setCreatedAt, time.Now())
	return s, nil
}

func setCreatedAt(s models.FlashcardSet) time.Time { return s.CreatedAt }

func (s *FlashcardService) persist(ctx context.Context) error {
	return s.store.Save(ctx, flashcardBlob, &s.state)
}

// CreateSet starts a new study session from generated card content. Every card
// begins not-studied with a zero review count; the cursor resets to the first
// card.
func (s *FlashcardService) CreateSet(ctx context.Context, topic string, cards []models.CardContent) (models.FlashcardSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setID, err := gonanoid.New()
	if err != nil {
		return models.FlashcardSet{}, err
	}
	tracked := make([]models.Flashcard, len(cards))
	for i, c := range cards {
		cardID, err := gonanoid.New()
		if err != nil {
			return models.FlashcardSet{}, err
		}
		tracked[i] = models.Flashcard{
			ID:     cardID,
			Front:  c.Front,
			Back:   c.Back,
			Status: models.StatusNotStudied,
		}
	}
	set := models.FlashcardSet{
		ID:        setID,
		Topic:     topic,
		Cards:     tracked,
		CreatedAt: time.Now(),
	}
	s.state.Current = &set
	s.state.Cursor = 0
	if err := s.persist(ctx); err != nil {
		return models.FlashcardSet{}, err
	}
	return set.Clone(), nil
}

// UpdateCardStatus sets the status of one card by id, stamps its review time,
// bumps its review count and recomputes the set mastery immediately.
func (s *FlashcardService) UpdateCardStatus(ctx context.Context, cardID string, status models.CardStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.state.Current
	if set == nil {
		return nil
	}
	found := false
	now := time.Now()
	for i := range set.Cards {
		if set.Cards[i].ID == cardID {
			set.Cards[i].Status = status
			set.Cards[i].LastReviewed = &now
			set.Cards[i].ReviewCount++
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	set.MasteryPercentage = scoring.Mastery(set.Cards)
	set.LastStudied = &now
	return s.persist(ctx)
}

// NextCard advances the cursor, clamped at the last card.
func (s *FlashcardService) NextCard() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current != nil && s.state.Cursor < len(s.state.Current.Cards)-1 {
		s.state.Cursor++
	}
	return s.state.Cursor
}

// PreviousCard moves the cursor back, clamped at the first card.
func (s *FlashcardService) PreviousCard() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Cursor > 0 {
		s.state.Cursor--
	}
	return s.state.Cursor
}

// GoToCard jumps to a card index; out-of-range indexes are ignored.
func (s *FlashcardService) GoToCard(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current != nil && index >= 0 && index < len(s.state.Current.Cards) {
		s.state.Cursor = index
	}
	return s.state.Cursor
}

// Cursor returns the current card index.
func (s *FlashcardService) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cursor
}

// Shuffle permutes the card order uniformly (Fisher-Yates) and resets the
// cursor to the first card.
func (s *FlashcardService) Shuffle(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.state.Current
	if set == nil {
		return nil
	}
	rand.Shuffle(len(set.Cards), func(i, j int) {
		set.Cards[i], set.Cards[j] = set.Cards[j], set.Cards[i]
	})
	s.state.Cursor = 0
	return s.persist(ctx)
}

// ResetCurrentSet puts every card of the active set back to not-studied with a
// zero review count and clears the mastery. The set stays active.
func (s *FlashcardService) ResetCurrentSet(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.state.Current
	if set == nil {
		return nil
	}
	for i := range set.Cards {
		set.Cards[i].Status = models.StatusNotStudied
		set.Cards[i].ReviewCount = 0
		set.Cards[i].LastReviewed = nil
	}
	set.MasteryPercentage = 0
	s.state.Cursor = 0
	return s.persist(ctx)
}

// CompleteSet recomputes mastery, stamps the study time and archives the set.
// A history entry with the same id is replaced in place so re-studying a set
// never creates duplicate rows; otherwise the set is prepended. The active
// slot and cursor are cleared.
func (s *FlashcardService) CompleteSet(ctx context.Context) (models.FlashcardSet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.state.Current
	if set == nil {
		return models.FlashcardSet{}, false, nil
	}

	now := time.Now()
	set.MasteryPercentage = scoring.Mastery(set.Cards)
	set.LastStudied = &now
	completed := set.Clone()

	replaced := false
	for i := range s.state.History {
		if s.state.History[i].ID == completed.ID {
			s.state.History[i] = completed
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.History = append([]models.FlashcardSet{completed}, s.state.History...)
	}
	s.state.History = retention.Prune(s.state.History, setCreatedAt, now)

	s.state.Current = nil
	s.state.Cursor = 0
	if err := s.persist(ctx); err != nil {
		return models.FlashcardSet{}, false, err
	}
	return completed.Clone(), true, nil
}

// CurrentSet returns a snapshot of the active set, or false if the slot is
// empty.
func (s *FlashcardService) CurrentSet() (models.FlashcardSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return models.FlashcardSet{}, false
	}
	return s.state.Current.Clone(), true
}

// History returns a snapshot of the archived sets, most recent first.
func (s *FlashcardService) History() []models.FlashcardSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FlashcardSet, len(s.state.History))
	for i, set := range s.state.History {
		out[i] = set.Clone()
	}
	return out
}
