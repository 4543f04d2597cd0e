package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"study-service/internal/models"
	"study-service/internal/retention"
	"study-service/internal/storage"
)

const bookmarkBlob = "bookmarks"

type bookmarkState struct {
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

// BookmarkService is the registry of saved explanations. Bookmark identity
// for duplicate checks is the explanation text, not the id.
type BookmarkService struct {
	mu    sync.Mutex
	store storage.BlobStore
	state bookmarkState
}

func NewBookmarkService(ctx context.Context, store storage.BlobStore) (*BookmarkService, error) {
	s := &BookmarkService{store: store}
	if err := store.Load(ctx, bookmarkBlob, &s.state); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	s.state.Bookmarks = retention.Prune(s.state.Bookmarks, bookmarkCreatedAt, time.Now())
	return s, nil
}

func bookmarkCreatedAt(b models.Bookmark) time.Time { return b.CreatedAt }

func (s *BookmarkService) persist(ctx context.Context) error {
	return s.store.Save(ctx, bookmarkBlob, &s.state)
}

// Add stores a new bookmark at the front of the collection. There is no dedup
// on add; callers check IsBookmarked first if they want at-most-one semantics.
func (s *BookmarkService) Add(ctx context.Context, topic string, complexity models.Complexity, explanation string) (models.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := gonanoid.New()
	if err != nil {
		return models.Bookmark{}, err
	}
	b := models.Bookmark{
		ID:          id,
		Topic:       topic,
		Complexity:  complexity,
		Explanation: explanation,
		CreatedAt:   time.Now(),
	}
	s.state.Bookmarks = append([]models.Bookmark{b}, s.state.Bookmarks...)
	s.state.Bookmarks = retention.Prune(s.state.Bookmarks, bookmarkCreatedAt, b.CreatedAt)
	if err := s.persist(ctx); err != nil {
		return models.Bookmark{}, err
	}
	return b, nil
}

// Remove deletes a bookmark by id; removing an unknown id is a no-op.
func (s *BookmarkService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Bookmarks[:0]
	for _, b := range s.state.Bookmarks {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.state.Bookmarks = kept
	return s.persist(ctx)
}

// IsBookmarked reports whether any stored bookmark carries exactly this
// explanation text.
func (s *BookmarkService) IsBookmarked(explanation string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.state.Bookmarks {
		if b.Explanation == explanation {
			return true
		}
	}
	return false
}

// Search filters bookmarks by case-insensitive substring match on topic or
// explanation. A blank query returns the whole collection in stored order.
func (s *BookmarkService) Search(query string) []models.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Bookmark, 0, len(s.state.Bookmarks))
	for _, b := range s.state.Bookmarks {
		if q == "" ||
			strings.Contains(strings.ToLower(b.Topic), q) ||
			strings.Contains(strings.ToLower(b.Explanation), q) {
			out = append(out, b)
		}
	}
	return out
}
