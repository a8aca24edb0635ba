package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hollomarton/naplo/internal/db"
	"github.com/hollomarton/naplo/internal/domain"
)

const entryColumns = `id, entry_date, start_time, end_time, duration_s, activity, value,
	category, related_to, role, emotion, goal, focus_tags, note, created_at`

// SQLiteEntryRepo implements EntryRepo on a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	tags, err := focusTagsToJSON(e.FocusTags)
	if err != nil {
		return err
	}
	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.Date.Format(dateLayout),
		clockToValue(e.Start),
		clockToValue(e.End),
		int64(e.Duration.Seconds()),
		e.Activity,
		nullableIntToValue(e.Value),
		e.Category,
		e.RelatedTo,
		e.Role,
		e.Emotion,
		e.Goal,
		tags,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, id))
}

// Update replaces every field of the record except created_at, which is
// immutable once set.
func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.Entry) error {
	tags, err := focusTagsToJSON(e.FocusTags)
	if err != nil {
		return err
	}
	query := `UPDATE entries SET
		entry_date = ?, start_time = ?, end_time = ?, duration_s = ?, activity = ?,
		value = ?, category = ?, related_to = ?, role = ?, emotion = ?, goal = ?,
		focus_tags = ?, note = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Date.Format(dateLayout),
		clockToValue(e.Start),
		clockToValue(e.End),
		int64(e.Duration.Seconds()),
		e.Activity,
		nullableIntToValue(e.Value),
		e.Category,
		e.RelatedTo,
		e.Role,
		e.Emotion,
		e.Goal,
		tags,
		e.Note,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Latest(ctx context.Context) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		ORDER BY created_at DESC, id DESC LIMIT 1`
	return r.scanEntry(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteEntryRepo) LatestByDay(ctx context.Context) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		ORDER BY entry_date DESC, start_time DESC, id DESC LIMIT 1`
	return r.scanEntry(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteEntryRepo) LatestByCategory(ctx context.Context, category string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE category = ?
		ORDER BY entry_date DESC, start_time DESC, id DESC LIMIT 1`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, category))
}

func (r *SQLiteEntryRepo) ListByCategory(ctx context.Context, category string, limit int) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE category = ?
		ORDER BY entry_date DESC, start_time DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("listing entries by category: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE entry_date = ?
		ORDER BY start_time ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing entries by date: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListRange(ctx context.Context, from, to *time.Time) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	var (
		conds []string
		args  []any
	)
	if from != nil {
		conds = append(conds, "entry_date >= ?")
		args = append(args, from.Format(dateLayout))
	}
	if to != nil {
		conds = append(conds, "entry_date <= ?")
		args = append(args, to.Format(dateLayout))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY entry_date DESC, start_time DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries in range: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListRangeByCategory(ctx context.Context, from, to time.Time, category string) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE entry_date >= ? AND entry_date <= ? AND category = ?
		ORDER BY entry_date DESC, start_time DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout), category)
	if err != nil {
		return nil, fmt.Errorf("listing entries in range by category: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) DistinctValues(ctx context.Context, label domain.LabelType) ([]string, error) {
	col, ok := labelColumns[label]
	if !ok {
		return nil, fmt.Errorf("unknown label type %q", label)
	}
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM entries WHERE %s <> '' ORDER BY %s`, col, col, col)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing distinct %s values: %w", label, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning distinct value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating distinct values: %w", err)
	}
	return values, nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.Entry, error) {
	var (
		e                  domain.Entry
		dateStr, createdAt string
		startStr, endStr   sql.NullString
		durationSec        int64
		value              sql.NullInt64
		tags               string
	)
	err := row.Scan(
		&e.ID, &dateStr, &startStr, &endStr, &durationSec, &e.Activity, &value,
		&e.Category, &e.RelatedTo, &e.Role, &e.Emotion, &e.Goal, &tags, &e.Note, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}
	return r.populateEntry(&e, dateStr, startStr, endStr, durationSec, value, tags, createdAt)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	for rows.Next() {
		var (
			e                  domain.Entry
			dateStr, createdAt string
			startStr, endStr   sql.NullString
			durationSec        int64
			value              sql.NullInt64
			tags               string
		)
		err := rows.Scan(
			&e.ID, &dateStr, &startStr, &endStr, &durationSec, &e.Activity, &value,
			&e.Category, &e.RelatedTo, &e.Role, &e.Emotion, &e.Goal, &tags, &e.Note, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entry, err := r.populateEntry(&e, dateStr, startStr, endStr, durationSec, value, tags, createdAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) populateEntry(e *domain.Entry, dateStr string, startStr, endStr sql.NullString,
	durationSec int64, value sql.NullInt64, tags, createdAt string) (*domain.Entry, error) {

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing entry date: %w", err)
	}
	e.Date = date
	e.Start = parseNullableClock(startStr)
	e.End = parseNullableClock(endStr)
	e.Duration = time.Duration(durationSec) * time.Second
	e.Value = intFromNullable(value)

	e.FocusTags, err = focusTagsFromJSON(tags)
	if err != nil {
		return nil, err
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing entry created_at: %w", err)
	}
	e.CreatedAt = created

	return e, nil
}
