package scoring

import (
	"math"
	"strings"

	"study-service/internal/models"
)

// Normalize lowercases and trims an answer before comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Evaluate reports whether userAnswer is correct for the given question.
// Matching is intentionally lenient for free-text answers: equality or
// substring containment in either direction counts as correct.
func Evaluate(q models.Question, userAnswer string) bool {
	correct := Normalize(q.CorrectAnswer)
	user := Normalize(userAnswer)

	switch q.Type {
	case models.TypeMultipleChoice:
		// Match on the option letter (A, B, C, D).
		return user == correct

	case models.TypeTrueFalse:
		// Accept "t"/"f" shorthand.
		if user == correct {
			return true
		}
		return correct != "" && user == correct[:1]

	case models.TypeShortAnswer, models.TypeFillBlank:
		return user == correct ||
			strings.Contains(user, correct) ||
			strings.Contains(correct, user)

	default:
		return false
	}
}

// CountCorrect counts questions whose recorded evaluation is true. Questions
// never answered count as incorrect.
func CountCorrect(questions []models.Question) int {
	n := 0
	for _, q := range questions {
		if q.IsCorrect != nil && *q.IsCorrect {
			n++
		}
	}
	return n
}

// Percentage returns round(100 * correct / total), or 0 when total is 0.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Mastery returns the share of cards marked "know", as a rounded percentage.
func Mastery(cards []models.Flashcard) int {
	if len(cards) == 0 {
		return 0
	}
	know := 0
	for _, c := range cards {
		if c.Status == models.StatusKnow {
			know++
		}
	}
	return Percentage(know, len(cards))
}
