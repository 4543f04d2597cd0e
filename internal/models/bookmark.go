package models

import "time"

type Complexity string

const (
	ComplexityBeginner     Complexity = "beginner"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// ValidComplexity reports whether c is one of the supported complexity levels.
func ValidComplexity(c Complexity) bool {
	switch c {
	case ComplexityBeginner, ComplexityIntermediate, ComplexityAdvanced:
		return true
	}
	return false
}

// Bookmark is a saved explanation. Identity for "is this bookmarked" checks is
// the explanation text itself, not the id.
type Bookmark struct {
	ID          string     `bson:"id" json:"id"`
	Topic       string     `bson:"topic" json:"topic"`
	Complexity  Complexity `bson:"complexity" json:"complexity"`
	Explanation string     `bson:"explanation" json:"explanation"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}
