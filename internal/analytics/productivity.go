package analytics

import (
	"math"

	"unidash-be/internal/models"
)

// Workload buckets.
const (
	WorkloadEmails        = "emails"
	WorkloadDocuments     = "documents"
	WorkloadCollaboration = "collaboration"
	WorkloadPlanning      = "planning"
)

var workloadKeys = []string{WorkloadEmails, WorkloadDocuments, WorkloadCollaboration, WorkloadPlanning}

// Estimated minutes spent per unit of work, used as workload weights.
const (
	minutesPerEmail          = 2
	minutesPerDocument       = 15
	minutesPerCollabEmail    = 3
	minutesPerGeneratedReply = 2
	minutesPerImportantEmail = 4
	minutesPerTemplate       = 3
)

// Score caps: each component contributes at most its cap above the base score.
const (
	scoreBase          = 50
	scoreEmailsCap     = 20
	scoreEmailsFull    = 100
	scoreDocumentsCap  = 15
	scoreDocumentsFull = 10
	scoreRepliesCap    = 15
	scoreRepliesFull   = 20
)

// illustrativeHours is not derived from per-hour activity.
var illustrativeHours = []models.HourScore{
	{Hour: 9, Score: 85},
	{Hour: 10, Score: 92},
	{Hour: 11, Score: 88},
	{Hour: 14, Score: 78},
	{Hour: 15, Score: 82},
}

// ScoreProductivity derives the productivity snapshot from the three collector snapshots.
func ScoreProductivity(policy Policy, period models.Period, mail models.MailActivitySnapshot, gen models.GenerationUsageSnapshot, docs models.DocumentUsageSnapshot) models.ProductivitySnapshot {
	activeDays := 0
	for _, d := range mail.ActivityByDay {
		if d.Count > 0 {
			activeDays++
		}
	}
	if activeDays < 1 {
		activeDays = 1
	}

	dayCount := period.DayCount
	if dayCount <= 0 {
		dayCount = 7
	}

	emails := float64(nonNegative(mail.TotalEmails))
	documents := float64(nonNegative(docs.DocumentsThisPeriod))
	replies := float64(nonNegative(gen.TotalGenerated))

	workHours := float64(activeDays) * policy.WorkHoursPerActiveDay
	snap := models.ProductivitySnapshot{
		TotalWorkHours:     round1(workHours),
		DocumentsPerWeek:   round1(documents / float64(dayCount) * 7),
		AITimeSaved:        round1(replies * policy.MinutesSavedPerReply / 60),
		ProductivityScore:  Score(emails, documents, replies),
		TopProductiveHours: append([]models.HourScore(nil), illustrativeHours...),
	}
	if workHours > 0 {
		snap.EmailsPerHour = round1(emails / workHours)
	}

	collabEmails := float64(mail.Categories[CategoryAcademic] + mail.Categories[CategoryStudentSupport])
	snap.WorkloadDistribution = Renormalize(workloadKeys, map[string]float64{
		WorkloadEmails:        emails * minutesPerEmail,
		WorkloadDocuments:     documents * minutesPerDocument,
		WorkloadCollaboration: collabEmails*minutesPerCollabEmail + replies*minutesPerGeneratedReply,
		WorkloadPlanning:      float64(mail.ImportantEmails)*minutesPerImportantEmail + float64(gen.TemplatesUsed)*minutesPerTemplate,
	})

	snap.WeeklyGoals = map[string]int{
		"emails":    goal(emails, policy.GoalMultiplier),
		"documents": goal(documents, policy.GoalMultiplier),
		"aiReplies": goal(replies, policy.GoalMultiplier),
		"workHours": goal(workHours, policy.GoalMultiplier),
	}
	return snap
}

// Score is the composite productivity score, bounded to [0,100] and
// non-decreasing in each input up to its cap.
func Score(emails, documents, replies float64) int {
	raw := scoreBase +
		math.Min(emails/scoreEmailsFull*scoreEmailsCap, scoreEmailsCap) +
		math.Min(documents/scoreDocumentsFull*scoreDocumentsCap, scoreDocumentsCap) +
		math.Min(replies/scoreRepliesFull*scoreRepliesCap, scoreRepliesCap)
	if math.IsNaN(raw) {
		return scoreBase
	}
	return clampInt(int(math.Round(raw)), 0, 100)
}

func goal(v, multiplier float64) int {
	return int(math.Round(finiteNonNegative(v) * multiplier))
}

func round1(v float64) float64 {
	return math.Round(finiteNonNegative(v)*10) / 10
}
