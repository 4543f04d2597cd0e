package models

import "time"

type CardStatus string

const (
	StatusNotStudied CardStatus = "not-studied"
	StatusDontKnow   CardStatus = "dont-know"
	StatusLearning   CardStatus = "learning"
	StatusKnow       CardStatus = "know"
)

// ValidCardStatus reports whether s is one of the supported card statuses.
func ValidCardStatus(s CardStatus) bool {
	switch s {
	case StatusNotStudied, StatusDontKnow, StatusLearning, StatusKnow:
		return true
	}
	return false
}

type Flashcard struct {
	ID           string     `bson:"id" json:"id"`
	Front        string     `bson:"front" json:"front"`
	Back         string     `bson:"back" json:"back"`
	Status       CardStatus `bson:"status" json:"status"`
	LastReviewed *time.Time `bson:"last_reviewed,omitempty" json:"last_reviewed,omitempty"`
	ReviewCount  int        `bson:"review_count" json:"review_count"`
}

// CardContent is the generated front/back pair before it becomes a tracked card.
type CardContent struct {
	Front string `bson:"front" json:"front"`
	Back  string `bson:"back" json:"back"`
}

// FlashcardSet is one study session. MasteryPercentage is recomputed after
// every status change, not deferred to completion.
type FlashcardSet struct {
	ID                string      `bson:"id" json:"id"`
	Topic             string      `bson:"topic" json:"topic"`
	Cards             []Flashcard `bson:"cards" json:"cards"`
	CreatedAt         time.Time   `bson:"created_at" json:"created_at"`
	LastStudied       *time.Time  `bson:"last_studied,omitempty" json:"last_studied,omitempty"`
	MasteryPercentage int         `bson:"mastery_percentage" json:"mastery_percentage"`
}

// Clone returns a deep copy of the set.
func (s FlashcardSet) Clone() FlashcardSet {
	out := s
	out.Cards = make([]Flashcard, len(s.Cards))
	for i, card := range s.Cards {
		c := card
		if card.LastReviewed != nil {
			v := *card.LastReviewed
			c.LastReviewed = &v
		}
		out.Cards[i] = c
	}
	if s.LastStudied != nil {
		v := *s.LastStudied
		out.LastStudied = &v
	}
	return out
}
