package retention

import (
	"testing"
	"time"
)

type entry struct {
	name      string
	createdAt time.Time
}

func TestPruneHorizon(t *testing.T) {
	now := time.Now()
	items := []entry{
		{"fresh", now.AddDate(0, 0, -1)},
		{"borderline kept", now.AddDate(0, 0, -29)},
		{"expired", now.AddDate(0, 0, -31)},
	}

	kept := Prune(items, func(e entry) time.Time { return e.createdAt }, now)

	if len(kept) != 2 {
		t.Fatalf("Expected 2 entries kept, got %d", len(kept))
	}
	for _, e := range kept {
		if e.name == "expired" {
			t.Error("Expected 31-day-old entry to be pruned")
		}
	}
}

func TestPruneIdempotent(t *testing.T) {
	now := time.Now()
	items := []entry{
		{"a", now.AddDate(0, 0, -5)},
		{"b", now.AddDate(0, 0, -40)},
	}

	once := Prune(items, func(e entry) time.Time { return e.createdAt }, now)
	twice := Prune(once, func(e entry) time.Time { return e.createdAt }, now)

	if len(once) != 1 || len(twice) != 1 {
		t.Errorf("Expected 1 entry after each prune, got %d then %d", len(once), len(twice))
	}
}

func TestPruneWithHorizon(t *testing.T) {
	now := time.Now()
	items := []entry{
		{"recent", now.AddDate(0, 0, -3)},
		{"old", now.AddDate(0, 0, -10)},
	}

	kept := PruneWithHorizon(items, func(e entry) time.Time { return e.createdAt }, now, 7)

	if len(kept) != 1 || kept[0].name != "recent" {
		t.Errorf("Expected only the recent entry with a 7-day horizon, got %d entries", len(kept))
	}
}

func TestPruneEmpty(t *testing.T) {
	kept := Prune(nil, func(e entry) time.Time { return e.createdAt }, time.Now())
	if len(kept) != 0 {
		t.Errorf("Expected empty result, got %d entries", len(kept))
	}
}
