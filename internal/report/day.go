package report

import (
	"math"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
)

// TopLimit caps the per-day category and goal rankings.
const TopLimit = 12

// EntryView is the wire shape of one entry inside a report.
type EntryView struct {
	ID           string  `json:"id"`
	Date         string  `json:"datum"`
	Start        string  `json:"kezdet"`
	End          string  `json:"veg"`
	Minutes      int     `json:"minutes"`
	MinutesHuman string  `json:"minutes_human"`
	Value        *int    `json:"ertek"`
	Category     string  `json:"kategoria"`
	RelatedTo    string  `json:"kapcsolodo"`
	Role         string  `json:"szerep"`
	Emotion      string  `json:"erzelem"`
	Goal         string  `json:"kapcsolodo_cel"`
	Activity     string  `json:"tevekenyseg"`
	Note         string  `json:"megjegyzes"`
}

// NewEntryView projects an entry into its report shape.
func NewEntryView(e *domain.Entry) EntryView {
	m := e.Minutes()
	return EntryView{
		ID:           e.ID,
		Date:         e.Date.Format("2006-01-02"),
		Start:        formatClock(e.Start),
		End:          formatClock(e.End),
		Minutes:      m,
		MinutesHuman: FormatMinutes(m),
		Value:        e.Value,
		Category:     e.Category,
		RelatedTo:    e.RelatedTo,
		Role:         e.Role,
		Emotion:      e.Emotion,
		Goal:         e.Goal,
		Activity:     e.Activity,
		Note:         e.Note,
	}
}

// DayOverview answers "how did this day go": the day's timeline plus
// totals, value statistics and top-ranked categories and goals.
type DayOverview struct {
	Date          string         `json:"date"`
	Entries       []EntryView    `json:"entries"`
	TotalMinutes  int            `json:"total_minutes"`
	TotalHuman    string         `json:"total_human"`
	AvgValue      *float64       `json:"avg_ertek"`
	MinValue      *int           `json:"min_ertek"`
	MaxValue      *int           `json:"max_ertek"`
	TopCategories []LabelMinutes `json:"top_kategoriak"`
	TopGoals      []LabelMinutes `json:"top_celok"`
}

// BuildDayOverview computes the day report from one day's entries, which
// must already be ordered by start time then id. The goal ranking skips
// entries with no goal; the category ranking keeps the unlabeled bucket.
func BuildDayOverview(date time.Time, entries []*domain.Entry) *DayOverview {
	o := &DayOverview{
		Date:    date.Format("2006-01-02"),
		Entries: make([]EntryView, 0, len(entries)),
	}

	var values []int
	for _, e := range entries {
		v := NewEntryView(e)
		o.Entries = append(o.Entries, v)
		o.TotalMinutes += v.Minutes
		if e.Value != nil {
			values = append(values, *e.Value)
		}
	}
	o.TotalHuman = FormatMinutes(o.TotalMinutes)

	if len(values) > 0 {
		sum, min, max := values[0], values[0], values[0]
		for _, v := range values[1:] {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		avg := round2(float64(sum) / float64(len(values)))
		o.AvgValue = &avg
		o.MinValue = &min
		o.MaxValue = &max
	}

	o.TopCategories = rankByLabel(entries, func(e *domain.Entry) string { return e.Category }, false, TopLimit)
	o.TopGoals = rankByLabel(entries, func(e *domain.Entry) string { return e.Goal }, true, TopLimit)

	return o
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
