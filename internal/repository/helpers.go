package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// labelColumns maps each label type to its entries column. Field names
// arriving from callers are never interpolated into SQL directly.
var labelColumns = map[domain.LabelType]string{
	domain.LabelCategory: "category",
	domain.LabelRelated:  "related_to",
	domain.LabelRole:     "role",
	domain.LabelEmotion:  "emotion",
	domain.LabelGoal:     "goal",
}

// clockToValue converts an optional clock time to its stored "HH:MM" form.
// Returns SQL NULL for a nil pointer.
func clockToValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(clockLayout)
}

// parseNullableClock parses a stored "HH:MM" value back into a clock time.
// NULL, empty or malformed values come back as nil.
func parseNullableClock(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(clockLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func focusTagsToJSON(tags []domain.FocusTag) (string, error) {
	if tags == nil {
		tags = []domain.FocusTag{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding focus tags: %w", err)
	}
	return string(b), nil
}

func focusTagsFromJSON(s string) ([]domain.FocusTag, error) {
	if s == "" {
		return nil, nil
	}
	var tags []domain.FocusTag
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("decoding focus tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}

// nullableIntToValue converts a *int to a value suitable for storage,
// mapping nil to SQL NULL.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intFromNullable(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
