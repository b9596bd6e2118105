package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantLabel string
		wantDays  int
		wantStart string
	}{
		{"week", "week", PeriodWeek, 7, "2025-03-05"},
		{"month", "month", PeriodMonth, 30, "2025-02-12"},
		{"year", "year", PeriodYear, 365, "2024-03-12"},
		{"mixed case", " Month ", PeriodMonth, 30, "2025-02-12"},
		{"unknown falls back to week", "decade", PeriodWeek, 7, "2025-03-05"},
		{"empty falls back to week", "", PeriodWeek, 7, "2025-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePeriod(tt.label, testNow)
			assert.Equal(t, tt.wantLabel, p.Label)
			assert.Equal(t, tt.wantDays, p.DayCount)
			assert.Equal(t, tt.wantStart, p.Start.Format("2006-01-02"))
			assert.Equal(t, testNow, p.End)
			assert.False(t, p.Start.After(p.End))
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p := ResolvePeriod(PeriodWeek, testNow)

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	assert.True(t, p.Contains(testNow.AddDate(0, 0, -3)))
	assert.False(t, p.Contains(p.Start.Add(-1)))
	assert.False(t, p.Contains(p.End.Add(1)))
}
