package domain

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 24,563
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatMoney renders a dollar amount, e.g. $1,250.00
func FormatMoney(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatTrend renders a month-over-month change, empty for zero
func FormatTrend(trend float64) string {
	switch {
	case trend > 0:
		return printer.Sprintf("▲ %.1f%% from last month", trend)
	case trend < 0:
		return printer.Sprintf("▼ %.1f%% from last month", math.Abs(trend))
	default:
		return ""
	}
}

// FormatDate returns a user-friendly date string relative to now
func FormatDate(date, now time.Time) string {
	if sameDay(date, now) {
		return "Today"
	}

	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}

	return date.Format("2 Jan 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
