package testutil

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hollomarton/naplo/internal/domain"
)

var createdAtCounter atomic.Int64

// EntryOption mutates a fixture entry.
type EntryOption func(*domain.Entry)

func WithClock(start, end string) EntryOption {
	return func(e *domain.Entry) {
		e.Start = Clock(start)
		e.End = Clock(end)
		e.NormalizeDuration()
	}
}

func WithDuration(d time.Duration) EntryOption {
	return func(e *domain.Entry) {
		e.Duration = d
	}
}

func WithCategory(c string) EntryOption {
	return func(e *domain.Entry) {
		e.Category = c
	}
}

func WithGoal(g string) EntryOption {
	return func(e *domain.Entry) {
		e.Goal = g
	}
}

func WithValue(v int) EntryOption {
	return func(e *domain.Entry) {
		e.Value = &v
	}
}

func WithNoValue() EntryOption {
	return func(e *domain.Entry) {
		e.Value = nil
	}
}

func WithNote(n string) EntryOption {
	return func(e *domain.Entry) {
		e.Note = n
	}
}

func WithLabels(related, role, emotion string) EntryOption {
	return func(e *domain.Entry) {
		e.RelatedTo = related
		e.Role = role
		e.Emotion = emotion
	}
}

// NewTestEntry builds a valid entry on the given day. Creation timestamps are
// strictly increasing across fixtures so recency ordering is deterministic.
func NewTestEntry(date time.Time, activity string, opts ...EntryOption) *domain.Entry {
	n := createdAtCounter.Add(1)
	v := domain.DefaultValue
	e := &domain.Entry{
		ID:        uuid.New().String(),
		Date:      domain.DateOnly(date),
		Activity:  activity,
		Value:     &v,
		CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Day builds a midnight-UTC calendar day.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock parses "HH:MM" into a clock time pointer, panicking on bad input.
// Test-only convenience.
func Clock(s string) *time.Time {
	t, err := time.Parse("15:04", s)
	if err != nil {
		panic(err)
	}
	return &t
}
