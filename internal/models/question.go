package models

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeShortAnswer    QuestionType = "short-answer"
	TypeFillBlank      QuestionType = "fill-blank"
)

// ValidQuestionType reports whether t is one of the supported question types.
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer, TypeFillBlank:
		return true
	}
	return false
}

type Question struct {
	ID            string       `bson:"id" json:"id"`
	Type          QuestionType `bson:"type" json:"type"`
	Prompt        string       `bson:"prompt" json:"prompt"`
	Options       []string     `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer string       `bson:"correct_answer" json:"correct_answer"`
	Explanation   string       `bson:"explanation" json:"explanation"`
	UserAnswer    *string      `bson:"user_answer,omitempty" json:"user_answer,omitempty"`
	IsCorrect     *bool        `bson:"is_correct,omitempty" json:"is_correct,omitempty"`
}
