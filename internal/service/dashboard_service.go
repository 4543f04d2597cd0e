package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"study-service/internal/models"
	"study-service/internal/retention"
	"study-service/internal/storage"
)

const dashboardBlob = "dashboard"

type dashboardState struct {
	Records []models.StudyRecord `json:"study_sessions"`
}

// DashboardService keeps the study activity log that feeds the aggregate
// stats view. Completion paths append to it; it never mutates the session
// managers it reports on.
type DashboardService struct {
	mu    sync.Mutex
	store storage.BlobStore
	state dashboardState
}

func NewDashboardService(ctx context.Context, store storage.BlobStore) (*DashboardService, error) {
	s := &DashboardService{store: store}
	if err := store.Load(ctx, dashboardBlob, &s.state); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	s.state.Records = retention.Prune(s.state.Records, recordCreatedAt, time.Now())
	return s, nil
}

func recordCreatedAt(r models.StudyRecord) time.Time { return r.CreatedAt }

func (s *DashboardService) add(ctx context.Context, record models.StudyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := gonanoid.New()
	if err != nil {
		return err
	}
	record.ID = id
	record.CreatedAt = time.Now()
	s.state.Records = append([]models.StudyRecord{record}, s.state.Records...)
	s.state.Records = retention.Prune(s.state.Records, recordCreatedAt, record.CreatedAt)
	return s.store.Save(ctx, dashboardBlob, &s.state)
}

// RecordQuiz logs a completed quiz attempt.
func (s *DashboardService) RecordQuiz(ctx context.Context, topic string, score int, questionCount int, difficulty models.Difficulty) error {
	return s.add(ctx, models.StudyRecord{
		Type:          models.ActivityQuiz,
		Topic:         topic,
		Score:         &score,
		QuestionCount: questionCount,
		Difficulty:    difficulty,
	})
}

// RecordFlashcards logs a finished flashcard session. The mastery percentage
// is stored in the score field.
func (s *DashboardService) RecordFlashcards(ctx context.Context, topic string, mastery int, cardCount int) error {
	return s.add(ctx, models.StudyRecord{
		Type:      models.ActivityFlashcard,
		Topic:     topic,
		Score:     &mastery,
		CardCount: cardCount,
	})
}

// RecordExplanation logs a generated explanation.
func (s *DashboardService) RecordExplanation(ctx context.Context, topic string, complexity models.Complexity) error {
	return s.add(ctx, models.StudyRecord{
		Type:       models.ActivityExplanation,
		Topic:      topic,
		Complexity: complexity,
	})
}

// Recent returns the most recent records up to limit (default 5 when limit
// is not positive).
func (s *DashboardService) Recent(limit int) []models.StudyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 5
	}
	if limit > len(s.state.Records) {
		limit = len(s.state.Records)
	}
	return append([]models.StudyRecord(nil), s.state.Records[:limit]...)
}

// Stats aggregates the activity log into the dashboard view.
func (s *DashboardService) Stats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.DashboardStats
	quizScoreSum, quizScored := 0, 0
	masterySum, masteryScored := 0, 0
	for _, r := range s.state.Records {
		switch r.Type {
		case models.ActivityQuiz:
			stats.TotalQuizzes++
			if r.Score != nil {
				quizScoreSum += *r.Score
				quizScored++
			}
		case models.ActivityFlashcard:
			stats.TotalFlashcardsStudied += r.CardCount
			if r.Score != nil {
				masterySum += *r.Score
				masteryScored++
			}
		case models.ActivityExplanation:
			stats.TotalExplanations++
		}
	}
	if quizScored > 0 {
		stats.AverageQuizScore = int(math.Round(float64(quizScoreSum) / float64(quizScored)))
	}
	if masteryScored > 0 {
		stats.AverageMastery = int(math.Round(float64(masterySum) / float64(masteryScored)))
	}
	return stats
}
