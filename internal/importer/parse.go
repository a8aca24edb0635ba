package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// hunMonths maps lowercase Hungarian month names to month numbers.
var hunMonths = map[string]time.Month{
	"január":     time.January,
	"február":    time.February,
	"március":    time.March,
	"április":    time.April,
	"május":      time.May,
	"június":     time.June,
	"július":     time.July,
	"augusztus":  time.August,
	"szeptember": time.September,
	"október":    time.October,
	"november":   time.November,
	"december":   time.December,
}

var hunDateRe = regexp.MustCompile(`^\s*(\d{4})\.\s*(\S+)\s*(\d{1,2})\.\s*$`)

// ParseDateHU parses the spreadsheet's long date format,
// "2025. október 18., szombat". Everything after the first comma (the
// weekday) is ignored.
func ParseDateHU(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if i := strings.Index(s, ","); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	m := hunDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	month, ok := hunMonths[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month name %q", m[2])
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// ParseClock parses an "HH:MM" clock time, tolerating "_" or "." in place
// of the separator.
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	s = strings.ReplaceAll(s, "_", ":")
	s = strings.ReplaceAll(s, ".", ":")
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed time %q: %w", s, err)
	}
	return t, nil
}

// ParseSpan parses a duration cell: "H:MM", "H:MM:SS", or a bare integer
// taken as minutes.
func ParseSpan(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, fmt.Errorf("malformed duration %q", s)
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	case 2:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("malformed duration %q", s)
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
	case 1:
		if isDigits(s) {
			m, _ := strconv.Atoi(s)
			return time.Duration(m) * time.Minute, nil
		}
	}
	return 0, fmt.Errorf("malformed duration %q", s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
