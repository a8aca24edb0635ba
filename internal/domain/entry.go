package domain

import (
	"fmt"
	"time"
)

// DefaultValue is the value score applied when the caller omits one.
const DefaultValue = 6

// Entry is one logged time block of the journal.
type Entry struct {
	ID       string
	Date     time.Time  // calendar day, midnight UTC
	Start    *time.Time // clock time on Date
	End      *time.Time // clock time; earlier than Start means the block crosses midnight
	Duration time.Duration

	Activity string
	Value    *int

	Category  string
	RelatedTo string
	Role      string
	Emotion   string
	Goal      string

	FocusTags []FocusTag

	Note      string
	CreatedAt time.Time
}

// NormalizeDuration recomputes Duration from Date/Start/End.
// With both clock times present the supplied duration is never trusted:
// duration = end - start, plus 24h when end is earlier than start (a single
// midnight rollover; multi-day spans are not representable). With either
// time absent the explicitly supplied Duration is left untouched.
//
// Every persistence path and every validation path must call this, so a
// record saved by any route carries a consistent duration.
func (e *Entry) NormalizeDuration() {
	if e.Start == nil || e.End == nil {
		return
	}
	start := CombineDateTime(e.Date, *e.Start)
	end := CombineDateTime(e.Date, *e.End)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	e.Duration = end.Sub(start)
}

// EndDateTime returns the rollover-adjusted end timestamp of the entry,
// or the zero time when either clock time is missing.
func (e *Entry) EndDateTime() time.Time {
	if e.Start == nil || e.End == nil {
		return time.Time{}
	}
	start := CombineDateTime(e.Date, *e.Start)
	end := CombineDateTime(e.Date, *e.End)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return end
}

// Minutes returns the whole minutes of the entry's duration.
func (e *Entry) Minutes() int {
	if e.Duration <= 0 {
		return 0
	}
	return int(e.Duration / time.Minute)
}

// Validate checks the entry's own invariants. It does not touch the store.
func (e *Entry) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if e.Activity == "" {
		return fmt.Errorf("activity is required")
	}
	return ValidateFocusTags(e.FocusTags)
}

// CombineDateTime merges a calendar day with a clock time into one timestamp.
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

// DateOnly truncates a timestamp to its calendar day at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
