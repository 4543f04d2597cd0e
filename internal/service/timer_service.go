package service

import (
	"context"
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"study-service/internal/models"
	"study-service/internal/retention"
	"study-service/internal/storage"
)

const timerBlob = "timer-sessions"

type timerState struct {
	Sessions []models.TimerSession `json:"sessions"`
}

// TimerService logs completed pomodoro/break intervals and answers the
// today-so-far questions the dashboard asks.
type TimerService struct {
	mu    sync.Mutex
	store storage.BlobStore
	state timerState
}

func NewTimerService(ctx context.Context, store storage.BlobStore) (*TimerService, error) {
	s := &TimerService{store: store}
	if err := store.Load(ctx, timerBlob, &s.state); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	s.state.Sessions = retention.Prune(s.state.Sessions, timerCompletedAt, time.Now())
	return s, nil
}

func timerCompletedAt(s models.TimerSession) time.Time { return s.CompletedAt }

// RecordSession logs one finished interval.
func (s *TimerService) RecordSession(ctx context.Context, mode models.TimerMode, durationSeconds int) (models.TimerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := gonanoid.New()
	if err != nil {
		return models.TimerSession{}, err
	}
	session := models.TimerSession{
		ID:              id,
		Mode:            mode,
		DurationSeconds: durationSeconds,
		CompletedAt:     time.Now(),
	}
	s.state.Sessions = append([]models.TimerSession{session}, s.state.Sessions...)
	s.state.Sessions = retention.Prune(s.state.Sessions, timerCompletedAt, session.CompletedAt)
	if err := s.store.Save(ctx, timerBlob, &s.state); err != nil {
		return models.TimerSession{}, err
	}
	return session, nil
}

// TodayPomodoros counts pomodoro sessions completed since local midnight.
func (s *TimerService) TodayPomodoros() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, session := range s.state.Sessions {
		if session.Mode == models.ModePomodoro && sameDay(session.CompletedAt, time.Now()) {
			count++
		}
	}
	return count
}

// TodayStudySeconds sums the duration of today's pomodoro sessions.
func (s *TimerService) TodayStudySeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, session := range s.state.Sessions {
		if session.Mode == models.ModePomodoro && sameDay(session.CompletedAt, time.Now()) {
			total += session.DurationSeconds
		}
	}
	return total
}

// Sessions returns the logged intervals, most recent first.
func (s *TimerService) Sessions() []models.TimerSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.TimerSession(nil), s.state.Sessions...)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
