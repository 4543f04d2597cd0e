package service

import (
	"context"
	"encoding/json"

	"study-service/internal/models"
	"study-service/internal/storage"
)

// memStore is an in-memory BlobStore for tests. It serializes through JSON so
// the tests exercise the same date round-trip the real stores do.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, name string, v any) error {
	data, ok := m.blobs[name]
	if !ok {
		return storage.ErrNotFound
	}
	return json.Unmarshal(data, v)
}

func (m *memStore) Save(_ context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.blobs[name] = data
	return nil
}

func multipleChoice(id, correct string) models.Question {
	return models.Question{
		ID:            id,
		Type:          models.TypeMultipleChoice,
		Prompt:        "Pick one",
		Options:       []string{"A. first", "B. second", "C. third", "D. fourth"},
		CorrectAnswer: correct,
		Explanation:   "because",
	}
}

func trueFalse(id, correct string) models.Question {
	return models.Question{
		ID:            id,
		Type:          models.TypeTrueFalse,
		Prompt:        "True or false?",
		CorrectAnswer: correct,
		Explanation:   "because",
	}
}

func cardContents(n int) []models.CardContent {
	cards := make([]models.CardContent, n)
	for i := range cards {
		cards[i] = models.CardContent{Front: "term", Back: "definition"}
	}
	return cards
}
