package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no blob exists under the given name.
var ErrNotFound = errors.New("blob not found")

// BlobStore persists each state collection as one named JSON blob. Date fields
// round-trip as RFC 3339 strings and re-hydrate into time.Time on load, so
// retention comparisons always run on real timestamps.
type BlobStore interface {
	Load(ctx context.Context, name string, v any) error
	Save(ctx context.Context, name string, v any) error
}
