package retention

import "time"

// DefaultHorizonDays is the retention horizon applied to quiz history,
// flashcard-set history, bookmarks and session logs.
const DefaultHorizonDays = 30

// Prune removes entries older than the default horizon. The timestamp
// function extracts the date the entry is retained by. Pure and idempotent.
func Prune[T any](items []T, timestamp func(T) time.Time, now time.Time) []T {
	return PruneWithHorizon(items, timestamp, now, DefaultHorizonDays)
}

// PruneWithHorizon keeps entries whose timestamp is after now - horizonDays.
func PruneWithHorizon[T any](items []T, timestamp func(T) time.Time, now time.Time, horizonDays int) []T {
	cutoff := now.AddDate(0, 0, -horizonDays)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if timestamp(item).After(cutoff) {
			kept = append(kept, item)
		}
	}
	return kept
}
