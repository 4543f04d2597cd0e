package service

import (
	"context"
	"testing"
	"time"

	"study-service/internal/models"
)

func newQuizServiceForTest(t *testing.T) (*QuizService, *memStore) {
	t.Helper()
	store := newMemStore()
	s, err := NewQuizService(context.Background(), store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return s, store
}

func TestCreateQuizInitializesSlot(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	quiz, err := s.CreateQuiz(ctx, "Go basics", models.DifficultyEasy, []models.Question{
		multipleChoice("q1", "A"),
		multipleChoice("q2", "B"),
	})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	if quiz.ID == "" {
		t.Error("Expected a generated quiz id")
	}
	if len(quiz.UserAnswers) != len(quiz.Questions) {
		t.Errorf("Expected %d answer slots, got %d", len(quiz.Questions), len(quiz.UserAnswers))
	}
	for i, a := range quiz.UserAnswers {
		if a != nil {
			t.Errorf("Expected answer slot %d to start empty", i)
		}
	}
	if quiz.Score != nil || quiz.CompletedAt != nil {
		t.Error("Expected score and completedAt to start nil")
	}
	if quiz.CreatedAt.IsZero() {
		t.Error("Expected createdAt to be stamped")
	}
}

func TestSubmitAnswerEvaluatesInPlace(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	_, err := s.CreateQuiz(ctx, "Topic", models.DifficultyEasy, []models.Question{multipleChoice("q1", "B")})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	if err := s.SubmitAnswer(ctx, 0, " b "); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	quiz, _ := s.CurrentQuiz()
	q := quiz.Questions[0]
	if q.UserAnswer == nil || *q.UserAnswer != " b " {
		t.Error("Expected the raw user answer to be recorded on the question")
	}
	if q.IsCorrect == nil || !*q.IsCorrect {
		t.Error("Expected normalized answer to be evaluated as correct")
	}
	if quiz.UserAnswers[0] == nil || *quiz.UserAnswers[0] != " b " {
		t.Error("Expected the parallel answers array to be filled")
	}

	// Re-submission overwrites.
	if err := s.SubmitAnswer(ctx, 0, "C"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	quiz, _ = s.CurrentQuiz()
	if q := quiz.Questions[0]; q.IsCorrect == nil || *q.IsCorrect {
		t.Error("Expected overwritten answer to be evaluated as incorrect")
	}
}

func TestSubmitAnswerInvalidIsSilentNoOp(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	// No active quiz.
	if err := s.SubmitAnswer(ctx, 0, "A"); err != nil {
		t.Errorf("Expected no-op without active quiz, got %v", err)
	}

	if _, err := s.CreateQuiz(ctx, "Topic", models.DifficultyEasy, []models.Question{multipleChoice("q1", "A")}); err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	// Out-of-range indexes.
	if err := s.SubmitAnswer(ctx, -1, "A"); err != nil {
		t.Errorf("Expected no-op for negative index, got %v", err)
	}
	if err := s.SubmitAnswer(ctx, 5, "A"); err != nil {
		t.Errorf("Expected no-op for out-of-range index, got %v", err)
	}

	quiz, _ := s.CurrentQuiz()
	if quiz.Questions[0].UserAnswer != nil {
		t.Error("Expected no answer to be recorded by invalid submissions")
	}
}

func TestScoreCountsUnansweredAsIncorrect(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	questions := []models.Question{
		multipleChoice("q1", "A"),
		multipleChoice("q2", "A"),
		multipleChoice("q3", "A"),
		multipleChoice("q4", "A"),
		multipleChoice("q5", "A"),
	}
	if _, err := s.CreateQuiz(ctx, "Topic", models.DifficultyMedium, questions); err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	// Answer three correctly, leave two untouched.
	for i := 0; i < 3; i++ {
		if err := s.SubmitAnswer(ctx, i, "A"); err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
	}

	if got := s.Score(); got != 60 {
		t.Errorf("Expected score 60, got %d", got)
	}
}

func TestCompleteQuizFreezesScoreIntoHistory(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	if _, err := s.CreateQuiz(ctx, "Topic", models.DifficultyEasy, []models.Question{multipleChoice("q1", "A")}); err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if err := s.SubmitAnswer(ctx, 0, "A"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	completed, ok, err := s.CompleteQuiz(ctx)
	if err != nil || !ok {
		t.Fatalf("CompleteQuiz failed: ok=%v err=%v", ok, err)
	}

	if completed.Score == nil || *completed.Score != 100 {
		t.Error("Expected frozen score 100")
	}
	if completed.CompletedAt == nil {
		t.Error("Expected completedAt to be stamped")
	}

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(history))
	}
	if history[0].Score == nil || history[0].CompletedAt == nil {
		t.Error("Expected history entry to satisfy score/completedAt invariant")
	}

	// The active slot stays occupied until reset or a new quiz.
	if _, ok := s.CurrentQuiz(); !ok {
		t.Error("Expected active slot to remain occupied after completion")
	}
}

func TestCompleteQuizWithoutActiveQuiz(t *testing.T) {
	s, _ := newQuizServiceForTest(t)

	_, ok, err := s.CompleteQuiz(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok {
		t.Error("Expected completion of an empty slot to report no active quiz")
	}
}

func TestPhotosynthesisEndToEnd(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	questions := []models.Question{trueFalse("q1", "True"), trueFalse("q2", "False")}
	if _, err := s.CreateQuiz(ctx, "Photosynthesis", models.DifficultyEasy, questions); err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	if err := s.SubmitAnswer(ctx, 0, "true"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if err := s.SubmitAnswer(ctx, 1, "False"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	completed, ok, err := s.CompleteQuiz(ctx)
	if err != nil || !ok {
		t.Fatalf("CompleteQuiz failed: ok=%v err=%v", ok, err)
	}
	if completed.Score == nil || *completed.Score != 100 {
		t.Errorf("Expected score 100, got %v", completed.Score)
	}

	history := s.History()
	if len(history) == 0 || history[0].ID != completed.ID {
		t.Error("Expected the completed quiz at index 0 of history")
	}
}

func TestResetQuizClearsSlot(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	if _, err := s.CreateQuiz(ctx, "Topic", models.DifficultyEasy, []models.Question{multipleChoice("q1", "A")}); err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if err := s.ResetQuiz(ctx); err != nil {
		t.Fatalf("ResetQuiz failed: %v", err)
	}
	if _, ok := s.CurrentQuiz(); ok {
		t.Error("Expected empty slot after reset")
	}
}

func TestCreateQuizOverwritesActiveQuiz(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	first, err := s.CreateQuiz(ctx, "First", models.DifficultyEasy, []models.Question{multipleChoice("q1", "A")})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	second, err := s.CreateQuiz(ctx, "Second", models.DifficultyHard, []models.Question{multipleChoice("q1", "B")})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	current, ok := s.CurrentQuiz()
	if !ok || current.ID != second.ID || current.ID == first.ID {
		t.Error("Expected the new quiz to silently replace the in-progress one")
	}
	if len(s.History()) != 0 {
		t.Error("Expected the overwritten quiz not to enter history")
	}
}

func TestQuizStatePersistsAcrossRestart(t *testing.T) {
	s, store := newQuizServiceForTest(t)
	ctx := context.Background()

	created, err := s.CreateQuiz(ctx, "Topic", models.DifficultyEasy, []models.Question{multipleChoice("q1", "A")})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if err := s.SubmitAnswer(ctx, 0, "A"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	reloaded, err := NewQuizService(ctx, store)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	current, ok := reloaded.CurrentQuiz()
	if !ok || current.ID != created.ID {
		t.Fatal("Expected active quiz to survive a reload")
	}
	if current.Questions[0].IsCorrect == nil || !*current.Questions[0].IsCorrect {
		t.Error("Expected evaluation state to survive a reload")
	}
	if current.CreatedAt.IsZero() {
		t.Error("Expected createdAt to re-hydrate into a real timestamp")
	}
}

func TestQuizHistoryPrunedOnLoad(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	old := models.Quiz{ID: "old", CreatedAt: time.Now().AddDate(0, 0, -31)}
	recent := models.Quiz{ID: "recent", CreatedAt: time.Now().AddDate(0, 0, -29)}
	if err := store.Save(ctx, quizBlob, &quizState{History: []models.Quiz{recent, old}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := NewQuizService(ctx, store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("Expected 1 entry after pruning, got %d", len(history))
	}
	if history[0].ID != "recent" {
		t.Errorf("Expected the 29-day-old entry to be retained, got %q", history[0].ID)
	}
}

func TestQuizByID(t *testing.T) {
	s, _ := newQuizServiceForTest(t)
	ctx := context.Background()

	created, err := s.CreateQuiz(ctx, "Topic", models.DifficultyEasy, []models.Question{multipleChoice("q1", "A")})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if _, _, err := s.CompleteQuiz(ctx); err != nil {
		t.Fatalf("CompleteQuiz failed: %v", err)
	}

	if _, ok := s.QuizByID(created.ID); !ok {
		t.Error("Expected completed quiz to be retrievable by id")
	}
	if _, ok := s.QuizByID("missing"); ok {
		t.Error("Expected lookup of unknown id to fail")
	}
}
