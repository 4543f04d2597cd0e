package service

import (
	"context"
	"testing"
	"time"

	"study-service/internal/models"
)

func newDashboardServiceForTest(t *testing.T) *DashboardService {
	t.Helper()
	s, err := NewDashboardService(context.Background(), newMemStore())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return s
}

func TestStatsAggregatesActivity(t *testing.T) {
	s := newDashboardServiceForTest(t)
	ctx := context.Background()

	if err := s.RecordQuiz(ctx, "Go", 80, 10, models.DifficultyMedium); err != nil {
		t.Fatalf("RecordQuiz failed: %v", err)
	}
	if err := s.RecordQuiz(ctx, "SQL", 90, 5, models.DifficultyEasy); err != nil {
		t.Fatalf("RecordQuiz failed: %v", err)
	}
	if err := s.RecordFlashcards(ctx, "Go", 75, 12); err != nil {
		t.Fatalf("RecordFlashcards failed: %v", err)
	}
	if err := s.RecordFlashcards(ctx, "SQL", 50, 8); err != nil {
		t.Fatalf("RecordFlashcards failed: %v", err)
	}
	if err := s.RecordExplanation(ctx, "Channels", models.ComplexityIntermediate); err != nil {
		t.Fatalf("RecordExplanation failed: %v", err)
	}

	stats := s.Stats()
	if stats.TotalQuizzes != 2 {
		t.Errorf("Expected 2 quizzes, got %d", stats.TotalQuizzes)
	}
	if stats.AverageQuizScore != 85 {
		t.Errorf("Expected average quiz score 85, got %d", stats.AverageQuizScore)
	}
	if stats.TotalFlashcardsStudied != 20 {
		t.Errorf("Expected 20 flashcards studied, got %d", stats.TotalFlashcardsStudied)
	}
	if stats.AverageMastery != 63 {
		t.Errorf("Expected average mastery 63, got %d", stats.AverageMastery)
	}
	if stats.TotalExplanations != 1 {
		t.Errorf("Expected 1 explanation, got %d", stats.TotalExplanations)
	}
}

func TestStatsEmptyLog(t *testing.T) {
	s := newDashboardServiceForTest(t)

	stats := s.Stats()
	if stats.TotalQuizzes != 0 || stats.AverageQuizScore != 0 || stats.AverageMastery != 0 {
		t.Errorf("Expected zeroed stats for an empty log, got %+v", stats)
	}
}

func TestRecentDefaultsToFive(t *testing.T) {
	s := newDashboardServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		if err := s.RecordExplanation(ctx, "Topic", models.ComplexityBeginner); err != nil {
			t.Fatalf("RecordExplanation failed: %v", err)
		}
	}

	if got := len(s.Recent(0)); got != 5 {
		t.Errorf("Expected default limit of 5, got %d", got)
	}
	if got := len(s.Recent(3)); got != 3 {
		t.Errorf("Expected 3 records, got %d", got)
	}
	if got := len(s.Recent(100)); got != 8 {
		t.Errorf("Expected limit capped at log size, got %d", got)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	s := newDashboardServiceForTest(t)
	ctx := context.Background()

	if err := s.RecordQuiz(ctx, "First", 50, 5, models.DifficultyEasy); err != nil {
		t.Fatalf("RecordQuiz failed: %v", err)
	}
	if err := s.RecordQuiz(ctx, "Second", 70, 5, models.DifficultyEasy); err != nil {
		t.Fatalf("RecordQuiz failed: %v", err)
	}

	recent := s.Recent(2)
	if len(recent) != 2 || recent[0].Topic != "Second" {
		t.Error("Expected the most recent record first")
	}
	if recent[0].ID == "" {
		t.Error("Expected records to receive ids")
	}
}

func TestDashboardRecordsPrunedOnLoad(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	records := []models.StudyRecord{
		{ID: "recent", Type: models.ActivityQuiz, CreatedAt: time.Now().AddDate(0, 0, -29)},
		{ID: "expired", Type: models.ActivityQuiz, CreatedAt: time.Now().AddDate(0, 0, -31)},
	}
	if err := store.Save(ctx, dashboardBlob, &dashboardState{Records: records}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := NewDashboardService(ctx, store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats := s.Stats(); stats.TotalQuizzes != 1 {
		t.Errorf("Expected expired record pruned, got %d quizzes", stats.TotalQuizzes)
	}
}
