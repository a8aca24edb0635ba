package report

import (
	"sort"
	"strings"

	"github.com/hollomarton/naplo/internal/domain"
)

// SleepCategory is excluded from range summaries: sleep dominates every
// day's total and would drown out the categories worth comparing.
const SleepCategory = "Alvás"

// CategoryMinutes is one row of the range summary.
type CategoryMinutes struct {
	Category string `json:"kategoria"`
	Minutes  int    `json:"minutes"`
}

// LabelMinutes is one row of a top-N label ranking.
type LabelMinutes struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
	Human   string `json:"human"`
}

// BuildRangeSummary sums duration per category across the given entries,
// dropping the excluded category case-insensitively. Minutes are the floor
// of each category's summed seconds. Categories with no entries are simply
// absent; rows are ordered by minutes descending, category ascending on ties.
func BuildRangeSummary(entries []*domain.Entry, excludeCategory string) []CategoryMinutes {
	sums := sumSecondsByLabel(entries, func(e *domain.Entry) string { return e.Category },
		func(label string) bool {
			return excludeCategory != "" && strings.EqualFold(label, excludeCategory)
		})

	items := make([]CategoryMinutes, 0, len(sums))
	for label, seconds := range sums {
		items = append(items, CategoryMinutes{Category: label, Minutes: int(seconds / 60)})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Minutes != items[j].Minutes {
			return items[i].Minutes > items[j].Minutes
		}
		return items[i].Category < items[j].Category
	})
	return items
}

// rankByLabel builds a top-N minute ranking over one label field. Rows are
// ordered by minutes descending, label ascending on ties, then truncated
// to limit.
func rankByLabel(entries []*domain.Entry, label func(*domain.Entry) string, skipEmpty bool, limit int) []LabelMinutes {
	sums := sumSecondsByLabel(entries, label, func(l string) bool {
		return skipEmpty && l == ""
	})

	items := make([]LabelMinutes, 0, len(sums))
	for l, seconds := range sums {
		m := int(seconds / 60)
		items = append(items, LabelMinutes{Label: l, Minutes: m, Human: FormatMinutes(m)})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Minutes != items[j].Minutes {
			return items[i].Minutes > items[j].Minutes
		}
		return items[i].Label < items[j].Label
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// sumSecondsByLabel groups summed duration seconds by a label field.
// Entries without a duration contribute zero rather than erroring.
func sumSecondsByLabel(entries []*domain.Entry, label func(*domain.Entry) string, skip func(string) bool) map[string]int64 {
	sums := make(map[string]int64)
	for _, e := range entries {
		l := label(e)
		if skip(l) {
			continue
		}
		sums[l] += int64(e.Duration.Seconds())
	}
	return sums
}
