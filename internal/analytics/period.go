package analytics

import (
	"strings"
	"time"

	"unidash-be/internal/models"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ResolvePeriod maps a period label to a concrete window ending at now.
// Unknown labels fall back to week.
func ResolvePeriod(label string, now time.Time) models.Period {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case PeriodMonth:
		return models.Period{Label: PeriodMonth, Start: now.AddDate(0, -1, 0), End: now, DayCount: 30}
	case PeriodYear:
		return models.Period{Label: PeriodYear, Start: now.AddDate(-1, 0, 0), End: now, DayCount: 365}
	default:
		return models.Period{Label: PeriodWeek, Start: now.AddDate(0, 0, -7), End: now, DayCount: 7}
	}
}
