package service

import (
	"context"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/report"
)

// FormDefaults prefills the data-entry form: the next block starts where
// the previous one ended, and picking a category copies the labels of its
// latest entry.
type FormDefaults struct {
	Date  time.Time
	Start time.Time
	End   time.Time

	Activity  string
	Category  string
	RelatedTo string
	Role      string
	Emotion   string
	Goal      string
}

type EntryService interface {
	Create(ctx context.Context, e *domain.Entry) error
	// Update replaces the full record; partial patches do not exist.
	Update(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error)
	// RecentByCategory clamps limit into 1..50, defaulting to 20.
	RecentByCategory(ctx context.Context, category string, limit int) ([]*domain.Entry, error)
	FormDefaults(ctx context.Context, category string) (*FormDefaults, error)
}

type ReportService interface {
	CategorySummary(ctx context.Context, from, to time.Time) ([]report.CategoryMinutes, error)
	CategoryEntries(ctx context.Context, from, to time.Time, category string) ([]report.EntryView, error)
	// DayOverview reports on the given day; a nil date falls back to the
	// day of the newest journal entry, then to today.
	DayOverview(ctx context.Context, date *time.Time) (*report.DayOverview, error)
}

type SearchService interface {
	// Dashboard runs the free-text search. A blank query returns the
	// empty report no matter what range was given.
	Dashboard(ctx context.Context, q string, from, to *time.Time) (*report.SearchReport, error)
}

// BackfillResult reports one registry backfill run.
type BackfillResult struct {
	Seen    int
	Created int
}

type ParamService interface {
	// Backfill registers every distinct label value found on historical
	// entries. Idempotent; a second run creates nothing.
	Backfill(ctx context.Context) (BackfillResult, error)
	// Choices returns the registered values per label type, each sorted.
	Choices(ctx context.Context) (map[domain.LabelType][]string, error)
}

// ImportResult reports one bulk load.
type ImportResult struct {
	Created int
	Skipped int
}

type ImportService interface {
	// ImportCSV best-effort loads a spreadsheet export. Unparseable and
	// unpersistable rows are skipped and counted; blank rows are skipped
	// silently. It never aborts partway.
	ImportCSV(ctx context.Context, path string) (ImportResult, error)
}
