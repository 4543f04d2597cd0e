package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulty reports whether d is one of the supported difficulty levels.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Quiz is one quiz attempt. UserAnswers is kept parallel to Questions with one
// slot per question; a nil slot means the question was never answered.
// Score and CompletedAt are both nil until CompleteQuiz freezes the attempt.
type Quiz struct {
	ID          string     `bson:"id" json:"id"`
	Topic       string     `bson:"topic" json:"topic"`
	Difficulty  Difficulty `bson:"difficulty" json:"difficulty"`
	Questions   []Question `bson:"questions" json:"questions"`
	UserAnswers []*string  `bson:"user_answers" json:"user_answers"`
	Score       *int       `bson:"score" json:"score"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	CompletedAt *time.Time `bson:"completed_at" json:"completed_at"`
}

// Clone returns a deep copy so callers can hand out quiz snapshots without
// exposing the live slices owned by the session manager.
func (q Quiz) Clone() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		c := question
		if question.Options != nil {
			c.Options = append([]string(nil), question.Options...)
		}
		if question.UserAnswer != nil {
			v := *question.UserAnswer
			c.UserAnswer = &v
		}
		if question.IsCorrect != nil {
			v := *question.IsCorrect
			c.IsCorrect = &v
		}
		out.Questions[i] = c
	}
	out.UserAnswers = make([]*string, len(q.UserAnswers))
	for i, a := range q.UserAnswers {
		if a != nil {
			v := *a
			out.UserAnswers[i] = &v
		}
	}
	if q.Score != nil {
		v := *q.Score
		out.Score = &v
	}
	if q.CompletedAt != nil {
		v := *q.CompletedAt
		out.CompletedAt = &v
	}
	return out
}
