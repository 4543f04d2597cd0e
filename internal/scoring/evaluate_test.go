package scoring

import (
	"testing"

	"study-service/internal/models"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name          string
		questionType  models.QuestionType
		correctAnswer string
		userAnswer    string
		expected      bool
	}{
		{"multiple choice exact", models.TypeMultipleChoice, "B", "B", true},
		{"multiple choice lowercase", models.TypeMultipleChoice, "B", "b", true},
		{"multiple choice padded", models.TypeMultipleChoice, "B", " B ", true},
		{"multiple choice wrong letter", models.TypeMultipleChoice, "B", "C", false},
		{"true-false full word", models.TypeTrueFalse, "False", "false", true},
		{"true-false shorthand", models.TypeTrueFalse, "False", "f", true},
		{"true-false wrong", models.TypeTrueFalse, "False", "true", false},
		{"true-false shorthand true", models.TypeTrueFalse, "True", "t", true},
		{"short answer exact", models.TypeShortAnswer, "Paris", "paris", true},
		{"short answer user contains correct", models.TypeShortAnswer, "Paris", "paris, france", true},
		{"short answer correct contains user", models.TypeShortAnswer, "The mitochondria", "mitochondria", true},
		{"short answer unrelated", models.TypeShortAnswer, "Paris", "london", false},
		{"fill blank containment", models.TypeFillBlank, "photosynthesis", "it is photosynthesis", true},
		{"unknown type", models.QuestionType("essay"), "anything", "anything", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := models.Question{Type: tc.questionType, CorrectAnswer: tc.correctAnswer}
			got := Evaluate(q, tc.userAnswer)
			if got != tc.expected {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tc.correctAnswer, tc.userAnswer, got, tc.expected)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	testCases := []struct {
		correct  int
		total    int
		expected int
	}{
		{3, 5, 60},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}

	for _, tc := range testCases {
		if got := Percentage(tc.correct, tc.total); got != tc.expected {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.expected)
		}
	}
}

func TestCountCorrectIgnoresUnanswered(t *testing.T) {
	yes, no := true, false
	questions := []models.Question{
		{IsCorrect: &yes},
		{IsCorrect: &yes},
		{IsCorrect: &no},
		{}, // never answered
	}
	if got := CountCorrect(questions); got != 2 {
		t.Errorf("Expected 2 correct, got %d", got)
	}
}

func TestMastery(t *testing.T) {
	cards := []models.Flashcard{
		{Status: models.StatusKnow},
		{Status: models.StatusKnow},
		{Status: models.StatusLearning},
		{Status: models.StatusNotStudied},
	}
	if got := Mastery(cards); got != 50 {
		t.Errorf("Expected mastery 50, got %d", got)
	}
	if got := Mastery(nil); got != 0 {
		t.Errorf("Expected mastery 0 for empty set, got %d", got)
	}
}
