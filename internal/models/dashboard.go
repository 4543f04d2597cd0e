package models

import "time"

type ActivityType string

const (
	ActivityQuiz        ActivityType = "quiz"
	ActivityFlashcard   ActivityType = "flashcard"
	ActivityExplanation ActivityType = "explanation"
)

// StudyRecord is one dashboard entry: a completed quiz, a finished flashcard
// session, or a generated explanation.
type StudyRecord struct {
	ID            string       `bson:"id" json:"id"`
	Type          ActivityType `bson:"type" json:"type"`
	Topic         string       `bson:"topic" json:"topic"`
	Score         *int         `bson:"score,omitempty" json:"score,omitempty"`
	QuestionCount int          `bson:"question_count,omitempty" json:"question_count,omitempty"`
	CardCount     int          `bson:"card_count,omitempty" json:"card_count,omitempty"`
	Difficulty    Difficulty   `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Complexity    Complexity   `bson:"complexity,omitempty" json:"complexity,omitempty"`
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
}

// DashboardStats is the aggregate view read by the dashboard page.
type DashboardStats struct {
	TotalQuizzes           int `json:"total_quizzes"`
	AverageQuizScore       int `json:"average_quiz_score"`
	TotalFlashcardsStudied int `json:"total_flashcards_studied"`
	AverageMastery         int `json:"average_mastery"`
	TotalExplanations      int `json:"total_explanations"`
}
