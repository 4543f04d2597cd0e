package service

import (
	"context"
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"study-service/internal/models"
	"study-service/internal/retention"
	"study-service/internal/scoring"
	"study-service/internal/storage"
)

const quizBlob = "quiz-store"

type quizState struct {
	Current *models.Quiz  `json:"current_quiz"`
	History []models.Quiz `json:"quiz_history"`
}

// QuizService owns the single active quiz slot and the quiz history.
// Invalid operations (no active quiz, index out of range) are silent no-ops:
// the caller is a single trusted client and must never be able to corrupt
// state through misuse.
type QuizService struct {
	mu    sync.Mutex
	store storage.BlobStore
	state quizState
}

func NewQuizService(ctx context.Context, store storage.BlobStore) (*QuizService, error) {
	s := &QuizService{store: store}
	if err := store.Load(ctx, quizBlob, &s.state); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	// Opportunistic cleanup on load, matching the cleanup-on-init behavior of
	// the persisted client stores.
	s.state.History = retention.Prune(s.state.History, quizCreatedAt, time.Now())
	return s, nil
}

func quizCreatedAt(q models.Quiz) time.Time { return q.CreatedAt }

func (s *QuizService) persist(ctx context.Context) error {
	return s.store.Save(ctx, quizBlob, &s.state)
}

// CreateQuiz replaces the active slot with a fresh quiz. An in-progress quiz
// is overwritten silently: a new quiz always supersedes.
func (s *QuizService) CreateQuiz(ctx context.Context, topic string, difficulty models.Difficulty, questions []models.Question) (models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := gonanoid.New()
	if err != nil {
		return models.Quiz{}, err
	}
	quiz := models.Quiz{
		ID:          id,
		Topic:       topic,
		Difficulty:  difficulty,
		Questions:   questions,
		UserAnswers: make([]*string, len(questions)),
		CreatedAt:   time.Now(),
	}
	s.state.Current = &quiz
	if err := s.persist(ctx); err != nil {
		return models.Quiz{}, err
	}
	return quiz.Clone(), nil
}

// SubmitAnswer records the answer for one question and evaluates it in place.
// Re-submission for the same index overwrites the previous answer.
func (s *QuizService) SubmitAnswer(ctx context.Context, index int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.state.Current
	if quiz == nil || index < 0 || index >= len(quiz.Questions) {
		return nil
	}

	a := answer
	quiz.UserAnswers[index] = &a
	correct := scoring.Evaluate(quiz.Questions[index], answer)
	quiz.Questions[index].UserAnswer = &a
	quiz.Questions[index].IsCorrect = &correct

	return s.persist(ctx)
}

// Score computes the current percentage score. Unanswered questions count as
// incorrect. Returns 0 when there is no active quiz.
func (s *QuizService) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return 0
	}
	return scoring.Percentage(scoring.CountCorrect(s.state.Current.Questions), len(s.state.Current.Questions))
}

// CompleteQuiz freezes the score, stamps the completion time and prepends the
// quiz to history. The active slot is intentionally not cleared; only
// ResetQuiz or a new CreateQuiz does that.
func (s *QuizService) CompleteQuiz(ctx context.Context) (models.Quiz, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.state.Current
	if quiz == nil {
		return models.Quiz{}, false, nil
	}

	score := scoring.Percentage(scoring.CountCorrect(quiz.Questions), len(quiz.Questions))
	now := time.Now()
	quiz.Score = &score
	quiz.CompletedAt = &now

	frozen := quiz.Clone()
	s.state.History = append([]models.Quiz{frozen}, s.state.History...)
	s.state.History = retention.Prune(s.state.History, quizCreatedAt, now)

	if err := s.persist(ctx); err != nil {
		return models.Quiz{}, false, err
	}
	return frozen.Clone(), true, nil
}

// ResetQuiz clears the active slot unconditionally.
func (s *QuizService) ResetQuiz(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Current = nil
	return s.persist(ctx)
}

// CurrentQuiz returns a snapshot of the active quiz, or false if the slot is
// empty.
func (s *QuizService) CurrentQuiz() (models.Quiz, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		return models.Quiz{}, false
	}
	return s.state.Current.Clone(), true
}

// History returns a snapshot of the quiz history, most recent first.
func (s *QuizService) History() []models.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Quiz, len(s.state.History))
	for i, q := range s.state.History {
		out[i] = q.Clone()
	}
	return out
}

// QuizByID looks up a completed quiz in history.
func (s *QuizService) QuizByID(id string) (models.Quiz, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.state.History {
		if q.ID == id {
			return q.Clone(), true
		}
	}
	return models.Quiz{}, false
}
