package analytics

import (
	"math"
	"sort"

	"unidash-be/internal/models"
)

// Renormalize rescales raw weights to non-negative integers summing to exactly 100,
// using largest-remainder rounding with ties broken by key order. A zero total
// yields all zeros.
func Renormalize(keys []string, raw map[string]float64) map[string]int {
	out := make(map[string]int, len(keys))
	total := 0.0
	for _, k := range keys {
		out[k] = 0
		total += finiteNonNegative(raw[k])
	}
	if total <= 0 {
		return out
	}

	type share struct {
		key  string
		frac float64
		pos  int
	}
	shares := make([]share, 0, len(keys))
	assigned := 0
	for i, k := range keys {
		exact := finiteNonNegative(raw[k]) / total * 100
		whole := math.Floor(exact)
		out[k] = int(whole)
		assigned += int(whole)
		shares = append(shares, share{key: k, frac: exact - whole, pos: i})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].frac == shares[j].frac {
			return shares[i].pos < shares[j].pos
		}
		return shares[i].frac > shares[j].frac
	})
	for i := 0; assigned < 100 && len(shares) > 0; i++ {
		out[shares[i%len(shares)].key]++
		assigned++
	}
	return out
}

// Normalizer coerces a dashboard snapshot into an invariant-respecting shape.
type Normalizer struct {
	taxonomy Taxonomy
}

func NewNormalizer(taxonomy Taxonomy) *Normalizer {
	return &Normalizer{taxonomy: taxonomy}
}

// Normalize is idempotent and never panics.
func (n *Normalizer) Normalize(in models.DashboardSnapshot) (out models.DashboardSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			out = n.Empty(in.Period)
			out.GeneratedAt = in.GeneratedAt
		}
	}()

	out = in
	out.Mail = n.mail(in.Mail)
	out.Generation = n.generation(in.Generation)
	out.Documents = n.documents(in.Documents)
	out.Productivity = n.productivity(in.Productivity)
	out.Collaboration = n.collaboration(in.Collaboration)
	if out.Period == "" {
		out.Period = PeriodWeek
	}
	return out
}

// Empty returns a structurally complete all-default snapshot.
func (n *Normalizer) Empty(period string) models.DashboardSnapshot {
	if period == "" {
		period = PeriodWeek
	}
	return models.DashboardSnapshot{
		Mail:          EmptyMailSnapshot(nil),
		Generation:    EmptyGenerationSnapshot(nil),
		Documents:     EmptyDocumentSnapshot(n.taxonomy, nil),
		Productivity:  n.productivity(models.ProductivitySnapshot{}),
		Collaboration: n.collaboration(models.CollaborationSnapshot{}),
		Period:        period,
	}
}

func (n *Normalizer) mail(s models.MailActivitySnapshot) models.MailActivitySnapshot {
	s.TotalEmails = nonNegative(s.TotalEmails)
	s.UnreadEmails = nonNegative(s.UnreadEmails)
	s.StarredEmails = nonNegative(s.StarredEmails)
	s.ImportantEmails = nonNegative(s.ImportantEmails)
	s.Categories = countMap(s.Categories)
	s.AverageResponseTime = finiteNonNegative(s.AverageResponseTime)

	days := make([]models.DayActivity, 0, len(s.ActivityByDay))
	for _, d := range s.ActivityByDay {
		d.Count = nonNegative(d.Count)
		days = append(days, d)
	}
	if len(days) > 7 {
		days = days[len(days)-7:]
	}
	s.ActivityByDay = days

	senders := make([]models.SenderCount, 0, len(s.TopSenders))
	for _, sc := range s.TopSenders {
		sc.Count = nonNegative(sc.Count)
		senders = append(senders, sc)
	}
	if len(senders) > 5 {
		senders = senders[:5]
	}
	s.TopSenders = senders
	return s
}

func (n *Normalizer) generation(s models.GenerationUsageSnapshot) models.GenerationUsageSnapshot {
	s.TotalGenerated = nonNegative(s.TotalGenerated)
	s.RepliesByType = countMap(s.RepliesByType)
	s.RepliesByTone = countMap(s.RepliesByTone)
	s.AverageGenerationTime = finiteNonNegative(s.AverageGenerationTime)
	s.TemplatesUsed = nonNegative(s.TemplatesUsed)
	s.AIOnlyGeneration = nonNegative(s.AIOnlyGeneration)
	switch {
	case math.IsNaN(s.SuccessRate):
		s.SuccessRate = 100
	case s.SuccessRate < 0:
		s.SuccessRate = 0
	case s.SuccessRate > 100:
		s.SuccessRate = 100
	}
	return s
}

func (n *Normalizer) documents(s models.DocumentUsageSnapshot) models.DocumentUsageSnapshot {
	s.TotalDocuments = nonNegative(s.TotalDocuments)
	s.DocumentsByType = countMap(s.DocumentsByType)
	s.DocumentsByCategory = countMap(s.DocumentsByCategory)
	s.AIGeneratedDocuments = nonNegative(s.AIGeneratedDocuments)
	s.DocumentsThisPeriod = nonNegative(s.DocumentsThisPeriod)
	s.AverageDocumentLength = nonNegative(s.AverageDocumentLength)
	if s.MostActiveDay == "" {
		s.MostActiveDay = NoDataDay
	}

	byDay := make(map[string]int, len(s.DocumentsTrend))
	for _, d := range s.DocumentsTrend {
		byDay[d.Day] += nonNegative(d.Count)
	}
	trend := zeroTrend(n.taxonomy)
	for i := range trend {
		trend[i].Count = byDay[trend[i].Day]
	}
	s.DocumentsTrend = trend
	return s
}

func (n *Normalizer) productivity(s models.ProductivitySnapshot) models.ProductivitySnapshot {
	s.TotalWorkHours = finiteNonNegative(s.TotalWorkHours)
	s.EmailsPerHour = finiteNonNegative(s.EmailsPerHour)
	s.DocumentsPerWeek = finiteNonNegative(s.DocumentsPerWeek)
	s.AITimeSaved = finiteNonNegative(s.AITimeSaved)
	s.ProductivityScore = clampInt(s.ProductivityScore, 0, 100)

	hours := make([]models.HourScore, 0, len(s.TopProductiveHours))
	for _, h := range s.TopProductiveHours {
		hours = append(hours, models.HourScore{Hour: clampInt(h.Hour, 0, 23), Score: clampInt(h.Score, 0, 100)})
	}
	s.TopProductiveHours = hours
	s.WorkloadDistribution = percentMap(s.WorkloadDistribution, workloadKeys)
	s.WeeklyGoals = countMap(s.WeeklyGoals)
	return s
}

func (n *Normalizer) collaboration(s models.CollaborationSnapshot) models.CollaborationSnapshot {
	s.ActiveProjects = nonNegative(s.ActiveProjects)
	s.TeamMembers = nonNegative(s.TeamMembers)
	s.SharedDocuments = nonNegative(s.SharedDocuments)
	s.CollaborationHours = nonNegative(s.CollaborationHours)

	collaborators := make([]models.Collaborator, 0, len(s.TopCollaborators))
	for _, c := range s.TopCollaborators {
		c.Projects = nonNegative(c.Projects)
		c.Hours = nonNegative(c.Hours)
		collaborators = append(collaborators, c)
	}
	if len(collaborators) > 5 {
		collaborators = collaborators[:5]
	}
	s.TopCollaborators = collaborators

	status := make(map[string]string, len(s.ProjectStatus))
	for k, v := range s.ProjectStatus {
		status[k] = v
	}
	s.ProjectStatus = status
	s.CommunicationChannels = percentMap(s.CommunicationChannels, channelKeys)
	return s
}

// percentMap keeps the expected keys present and restores the sum-to-100 invariant when it drifted.
func percentMap(m map[string]int, keys []string) map[string]int {
	clean := countMap(m)
	for _, k := range keys {
		if _, ok := clean[k]; !ok {
			clean[k] = 0
		}
	}
	sum := 0
	for _, v := range clean {
		sum += v
	}
	if sum == 0 || sum == 100 {
		return clean
	}

	all := make([]string, 0, len(clean))
	for k := range clean {
		all = append(all, k)
	}
	sort.Strings(all)
	raw := make(map[string]float64, len(clean))
	for k, v := range clean {
		raw[k] = float64(v)
	}
	return Renormalize(all, raw)
}

func countMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = nonNegative(v)
	}
	return out
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finiteNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
