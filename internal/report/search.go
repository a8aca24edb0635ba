package report

import (
	"strconv"
	"strings"

	"github.com/hollomarton/naplo/internal/domain"
)

// SearchCap is the hard ceiling on returned search results. Overflow is
// truncated silently; there is no pagination.
const SearchCap = 500

// SearchSummary aggregates the full match set, including matches beyond
// the result cap.
type SearchSummary struct {
	Count        int      `json:"count"`
	TotalMinutes int      `json:"total_minutes"`
	TotalHuman   string   `json:"total_human"`
	AvgValue     *float64 `json:"avg_ertek"`
}

// DayGroup is one day's slice of the search results.
type DayGroup struct {
	Date         string      `json:"date"`
	Anchor       string      `json:"anchor"`
	Count        int         `json:"count"`
	TotalMinutes int         `json:"total_minutes"`
	TotalHuman   string      `json:"total_human"`
	AvgValue     *float64    `json:"avg_ertek"`
	Items        []EntryView `json:"items"`
}

// DayNavItem is one pill of the day-navigation strip.
type DayNavItem struct {
	Anchor string `json:"anchor"`
	Date   string `json:"date"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Month  int    `json:"month"`
	Style  string `json:"style"`
}

// SearchReport is the full dashboard search response.
type SearchReport struct {
	Query     string        `json:"q"`
	Summary   SearchSummary `json:"summary"`
	Results   []EntryView   `json:"results"`
	DayGroups []DayGroup    `json:"day_groups"`
	DayNav    []DayNavItem  `json:"day_nav"`
}

// NumericQuery reports whether q consists solely of digits, returning the
// parsed integer. Such a query additionally matches entries whose value
// score equals it exactly.
func NumericQuery(q string) (int, bool) {
	if q == "" {
		return 0, false
	}
	for _, r := range q {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(q)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchEntry applies the dashboard match rule: case-insensitive substring
// match across all text fields, OR value equality when the query is purely
// numeric.
func MatchEntry(e *domain.Entry, q string) bool {
	needle := strings.ToLower(q)
	for _, field := range []string{
		e.Activity, e.Note, e.Category, e.RelatedTo, e.Role, e.Emotion, e.Goal,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	if n, ok := NumericQuery(q); ok && e.Value != nil && *e.Value == n {
		return true
	}
	return false
}

// EmptySearchReport is the response for a blank query: zeroed summary and
// no results, whatever the date range said.
func EmptySearchReport(q string) *SearchReport {
	return &SearchReport{
		Query:     q,
		Summary:   SearchSummary{TotalHuman: FormatMinutes(0)},
		Results:   []EntryView{},
		DayGroups: []DayGroup{},
		DayNav:    []DayNavItem{},
	}
}

// BuildSearchReport assembles the dashboard response from the full match
// set, which must be ordered newest first. The summary covers every match;
// the result list and day grouping cover only the capped prefix.
func BuildSearchReport(q string, matches []*domain.Entry) *SearchReport {
	r := &SearchReport{
		Query:     q,
		Results:   []EntryView{},
		DayGroups: []DayGroup{},
		DayNav:    []DayNavItem{},
	}

	var totalSeconds int64
	var valueSum, valueCount int
	for _, e := range matches {
		totalSeconds += int64(e.Duration.Seconds())
		if e.Value != nil {
			valueSum += *e.Value
			valueCount++
		}
	}
	r.Summary = SearchSummary{
		Count:        len(matches),
		TotalMinutes: int(totalSeconds / 60),
		TotalHuman:   FormatMinutes(int(totalSeconds / 60)),
	}
	if valueCount > 0 {
		avg := round2(float64(valueSum) / float64(valueCount))
		r.Summary.AvgValue = &avg
	}

	capped := matches
	if len(capped) > SearchCap {
		capped = capped[:SearchCap]
	}

	// Day grouping preserves first-seen order: the capped list is newest
	// first, so the newest day group comes first too.
	groupIdx := make(map[string]int)
	type groupAcc struct {
		valueSum, valueCount int
	}
	accs := make(map[string]*groupAcc)

	for _, e := range capped {
		v := NewEntryView(e)
		r.Results = append(r.Results, v)

		key := v.Date
		i, ok := groupIdx[key]
		if !ok {
			i = len(r.DayGroups)
			groupIdx[key] = i
			accs[key] = &groupAcc{}
			r.DayGroups = append(r.DayGroups, DayGroup{
				Date:   key,
				Anchor: "d" + e.Date.Format("20060102"),
			})
			r.DayNav = append(r.DayNav, DayNavItem{
				Anchor: "d" + e.Date.Format("20060102"),
				Date:   key,
				Label:  e.Date.Format("01.02"),
				Title:  e.Date.Format("2006.01.02"),
				Month:  int(e.Date.Month()),
				Style:  MonthPillStyle(int(e.Date.Month())),
			})
		}
		g := &r.DayGroups[i]
		g.Items = append(g.Items, v)
		g.Count = len(g.Items)
		g.TotalMinutes += v.Minutes
		if e.Value != nil {
			accs[key].valueSum += *e.Value
			accs[key].valueCount++
		}
	}

	for i := range r.DayGroups {
		g := &r.DayGroups[i]
		g.TotalHuman = FormatMinutes(g.TotalMinutes)
		if acc := accs[g.Date]; acc.valueCount > 0 {
			avg := round2(float64(acc.valueSum) / float64(acc.valueCount))
			g.AvgValue = &avg
		}
	}

	return r
}
