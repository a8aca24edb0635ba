package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hollomarton/naplo/internal/report"
	"github.com/hollomarton/naplo/internal/service"
)

// FormatDayOverview renders the day report for the terminal: the day's
// timeline, totals and the top category/goal rankings.
func FormatDayOverview(o *report.DayOverview) string {
	var b strings.Builder

	b.WriteString(Header("Napló " + o.Date))
	b.WriteString("\n\n")

	if len(o.Entries) == 0 {
		b.WriteString(Dim("Nincs bejegyzés.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(o.Entries))
	for _, e := range o.Entries {
		rows = append(rows, []string{
			e.Start, e.End, e.MinutesHuman, formatValue(e.Value), e.Category, e.Activity,
		})
	}
	b.WriteString(RenderTable(
		[]string{"Kezdet", "Vég", "Idő", "Érték", "Kategória", "Tevékenység"}, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Összesen: %s", Bold(o.TotalHuman)))
	if o.AvgValue != nil {
		b.WriteString(fmt.Sprintf("   Érték: átlag %.2f (min %d, max %d)",
			*o.AvgValue, *o.MinValue, *o.MaxValue))
	}
	b.WriteString("\n")

	if len(o.TopCategories) > 0 {
		b.WriteString("\n" + Header("Top kategóriák") + "\n")
		b.WriteString(formatRanking(o.TopCategories))
	}
	if len(o.TopGoals) > 0 {
		b.WriteString("\n" + Header("Top célok") + "\n")
		b.WriteString(formatRanking(o.TopGoals))
	}

	return b.String()
}

func formatRanking(items []report.LabelMinutes) string {
	var b strings.Builder
	for _, it := range items {
		label := it.Label
		if label == "" {
			label = Dim("(nincs)")
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", label, Dim(it.Human)))
	}
	return b.String()
}

func formatValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// FormatImportResult renders the outcome of one CSV load.
func FormatImportResult(r service.ImportResult) string {
	line := StyleGreen.Render(fmt.Sprintf("✓ %d bejegyzés betöltve", r.Created))
	if r.Skipped > 0 {
		line += "  " + StyleYellow.Render(fmt.Sprintf("(%d sor kihagyva)", r.Skipped))
	}
	return line + "\n"
}

// FormatBackfillResult renders the outcome of one registry backfill.
func FormatBackfillResult(r service.BackfillResult) string {
	return StyleGreen.Render(fmt.Sprintf("✓ %d érték vizsgálva, %d új regisztrálva",
		r.Seen, r.Created)) + "\n"
}
