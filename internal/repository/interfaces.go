package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// EntryRepo is the store behind the journal. It answers filtered, ordered
// entry lists; grouping, ranking and totals are computed by the report core
// so they stay independent of the storage backend.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	// Update replaces the full record except created_at.
	Update(ctx context.Context, e *domain.Entry) error

	// ListRecent returns the newest entries by creation time.
	ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error)
	// Latest returns the most recently created entry.
	Latest(ctx context.Context) (*domain.Entry, error)
	// LatestByDay returns the entry highest in journal order
	// (date desc, start desc, id desc), regardless of creation time.
	LatestByDay(ctx context.Context) (*domain.Entry, error)
	// LatestByCategory returns the newest entry of a category by journal
	// position (date desc, start desc, id desc).
	LatestByCategory(ctx context.Context, category string) (*domain.Entry, error)
	// ListByCategory returns up to limit entries of a category, newest first.
	ListByCategory(ctx context.Context, category string, limit int) ([]*domain.Entry, error)
	// ListByDate returns one day's entries ordered by start time then id.
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Entry, error)
	// ListRange returns entries within the inclusive date range, newest
	// first. A nil bound leaves that side open.
	ListRange(ctx context.Context, from, to *time.Time) ([]*domain.Entry, error)
	// ListRangeByCategory narrows ListRange to one exact category.
	ListRangeByCategory(ctx context.Context, from, to time.Time, category string) ([]*domain.Entry, error)

	// DistinctValues returns all distinct non-empty values of the entry
	// field backing the given label type.
	DistinctValues(ctx context.Context, label domain.LabelType) ([]string, error)
}

// ParamRepo is the registry of known label values.
type ParamRepo interface {
	// GetOrCreate inserts the (type, name) pair unless it already exists.
	// Reports whether a new row was created; duplicates are never an error.
	GetOrCreate(ctx context.Context, typ domain.LabelType, name string) (bool, error)
	// ListNames returns the registered values of one label type, sorted.
	ListNames(ctx context.Context, typ domain.LabelType) ([]string, error)
}
