package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unidash-be/internal/models"
)

func activity(counts ...int) []models.DayActivity {
	days := make([]models.DayActivity, len(counts))
	for i, n := range counts {
		days[i] = models.DayActivity{Count: n}
	}
	return days
}

func sumValues(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func TestScoreProductivity_MonthDocumentsPerWeek(t *testing.T) {
	period := ResolvePeriod(PeriodMonth, testNow)
	docs := models.DocumentUsageSnapshot{DocumentsThisPeriod: 15}

	snap := ScoreProductivity(testPolicy(), period, EmptyMailSnapshot(nil), EmptyGenerationSnapshot(nil), docs)

	assert.Equal(t, 3.5, snap.DocumentsPerWeek)
}

func TestScoreProductivity(t *testing.T) {
	mail := models.MailActivitySnapshot{
		TotalEmails:     60,
		ImportantEmails: 10,
		Categories:      map[string]int{CategoryAcademic: 5, CategoryStudentSupport: 5, CategoryOther: 50},
		ActivityByDay:   activity(0, 0, 0, 3, 0, 5, 0),
	}
	gen := models.GenerationUsageSnapshot{TotalGenerated: 12, TemplatesUsed: 3}
	docs := models.DocumentUsageSnapshot{DocumentsThisPeriod: 15}

	snap := ScoreProductivity(testPolicy(), ResolvePeriod(PeriodWeek, testNow), mail, gen, docs)

	assert.Equal(t, 12.0, snap.TotalWorkHours)
	assert.Equal(t, 5.0, snap.EmailsPerHour)
	assert.Equal(t, 15.0, snap.DocumentsPerWeek)
	assert.Equal(t, 1.0, snap.AITimeSaved)
	// 50 + 12 + 15 (capped) + 9
	assert.Equal(t, 86, snap.ProductivityScore)
	assert.Equal(t, map[string]int{"emails": 72, "documents": 18, "aiReplies": 14, "workHours": 14}, snap.WeeklyGoals)
	assert.Len(t, snap.TopProductiveHours, 5)

	assert.Len(t, snap.WorkloadDistribution, 4)
	assert.Equal(t, 100, sumValues(snap.WorkloadDistribution))
	assert.Greater(t, snap.WorkloadDistribution[WorkloadDocuments], snap.WorkloadDistribution[WorkloadEmails])
}

func TestScoreProductivity_NoActivity(t *testing.T) {
	snap := ScoreProductivity(testPolicy(), ResolvePeriod(PeriodWeek, testNow), EmptyMailSnapshot(nil), EmptyGenerationSnapshot(nil), EmptyDocumentSnapshot(DefaultTaxonomy(), nil))

	// one active day floor
	assert.Equal(t, 6.0, snap.TotalWorkHours)
	assert.Equal(t, 0.0, snap.EmailsPerHour)
	assert.Equal(t, 50, snap.ProductivityScore)
	assert.Equal(t, 0, sumValues(snap.WorkloadDistribution))
	for _, k := range workloadKeys {
		assert.Contains(t, snap.WorkloadDistribution, k)
	}
}

func TestScoreBounds(t *testing.T) {
	assert.Equal(t, 50, Score(0, 0, 0))
	assert.Equal(t, 100, Score(1e9, 1e9, 1e9))
	assert.Equal(t, 70, Score(100, 0, 0))
	assert.Equal(t, 65, Score(0, 10, 0))
	assert.Equal(t, 65, Score(0, 0, 20))
}

func TestScoreMonotonic(t *testing.T) {
	inputs := []float64{0, 1, 5, 10, 19, 20, 50, 99, 100, 150, 1000}
	for i := 1; i < len(inputs); i++ {
		lo, hi := inputs[i-1], inputs[i]
		assert.LessOrEqual(t, Score(lo, 3, 3), Score(hi, 3, 3), "emails %v -> %v", lo, hi)
		assert.LessOrEqual(t, Score(3, lo, 3), Score(3, hi, 3), "documents %v -> %v", lo, hi)
		assert.LessOrEqual(t, Score(3, 3, lo), Score(3, 3, hi), "replies %v -> %v", lo, hi)
		s := Score(hi, hi, hi)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestWorkloadSumsToHundred(t *testing.T) {
	cases := []struct {
		emails, important, templates, replies, docs int
	}{
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1},
		{7, 3, 1, 2, 1},
		{499, 123, 17, 77, 33},
		{3, 3, 3, 3, 3},
	}
	for _, c := range cases {
		mail := models.MailActivitySnapshot{TotalEmails: c.emails, ImportantEmails: c.important, Categories: map[string]int{}}
		gen := models.GenerationUsageSnapshot{TotalGenerated: c.replies, TemplatesUsed: c.templates}
		docs := models.DocumentUsageSnapshot{DocumentsThisPeriod: c.docs}

		snap := ScoreProductivity(testPolicy(), ResolvePeriod(PeriodWeek, testNow), mail, gen, docs)

		assert.Equal(t, 100, sumValues(snap.WorkloadDistribution), "%+v", c)
		for k, v := range snap.WorkloadDistribution {
			assert.GreaterOrEqual(t, v, 0, k)
		}
	}
}
