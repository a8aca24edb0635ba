package importer

import (
	"fmt"
	"strconv"

	"github.com/hollomarton/naplo/internal/domain"
)

// ConvertRow turns a raw export row into a journal entry. Date, start, end
// and duration must all parse; any other cell is taken as-is. A non-numeric
// value cell becomes no value rather than an error.
//
// The returned entry has no ID or creation timestamp; the persisting side
// assigns those, and recomputes the duration from the clock times the same
// way interactive entry does.
func ConvertRow(row RawRow) (*domain.Entry, error) {
	date, err := ParseDateHU(row.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	start, err := ParseClock(row.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := ParseClock(row.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	span, err := ParseSpan(row.Span)
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}

	e := &domain.Entry{
		Date:      date,
		Start:     &start,
		End:       &end,
		Duration:  span,
		Activity:  row.Activity,
		Category:  row.Category,
		RelatedTo: row.RelatedTo,
		Role:      row.Role,
		Emotion:   row.Emotion,
		Goal:      row.Goal,
		Note:      row.Note,
	}
	if isDigits(row.Value) {
		v, _ := strconv.Atoi(row.Value)
		e.Value = &v
	}
	return e, nil
}
