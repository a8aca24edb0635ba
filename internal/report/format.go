package report

import "fmt"

// FormatMinutes renders a minute count as a human-readable Hungarian
// duration, e.g. "1 nap 1 óra" or "0 perc". Zero-valued leading segments
// are dropped; the minute segment always appears when everything else
// is zero, so the result is never empty.
func FormatMinutes(totalMinutes int) string {
	m := totalMinutes
	if m < 0 {
		m = 0
	}
	days := m / 1440
	hours := (m % 1440) / 60
	mins := m % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d nap", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d óra", hours))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d perc", mins))
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

type pillColors struct {
	bg, border string
}

// monthPalette holds one strongly distinct light background per month for
// the day-navigation pills.
var monthPalette = [12]pillColors{
	{"#fee2e2", "#ef4444"}, // 1 light red
	{"#ffedd5", "#f97316"}, // 2 light orange
	{"#fef9c3", "#eab308"}, // 3 light yellow
	{"#dcfce7", "#22c55e"}, // 4 light green
	{"#d1fae5", "#10b981"}, // 5 light emerald
	{"#cffafe", "#06b6d4"}, // 6 light cyan
	{"#dbeafe", "#3b82f6"}, // 7 light blue
	{"#e0e7ff", "#6366f1"}, // 8 light indigo
	{"#f3e8ff", "#a855f7"}, // 9 light purple
	{"#fce7f3", "#ec4899"}, // 10 light pink
	{"#fae8ff", "#d946ef"}, // 11 light fuchsia
	{"#e5e7eb", "#111827"}, // 12 light gray
}

// MonthPillStyle returns the inline CSS for a day-navigation pill keyed by
// month number. Months outside 1..12 fall back to the neutral gray pill.
func MonthPillStyle(month int) string {
	c := pillColors{"#e5e7eb", "#111827"}
	if month >= 1 && month <= 12 {
		c = monthPalette[(month-1)%12]
	}
	return fmt.Sprintf("background: %s; border-color: %s; color: #111;", c.bg, c.border)
}
