package models

import "time"

// Period is the resolved time window a dashboard request is scoped to.
type Period struct {
	Label    string    `json:"label"` // week, month, year
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	DayCount int       `json:"dayCount"`
}

// Contains reports whether t falls inside [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// DayActivity - message count for one calendar day
type DayActivity struct {
	Date    string `json:"date"` // YYYY-MM-DD format
	Count   int    `json:"count"`
	DayName string `json:"dayName"`
}

// SenderCount - a top sender with message count
type SenderCount struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// MailActivitySnapshot - mailbox activity for the period
type MailActivitySnapshot struct {
	TotalEmails         int            `json:"totalEmails"`
	UnreadEmails        int            `json:"unreadEmails"`
	StarredEmails       int            `json:"starredEmails"`
	ImportantEmails     int            `json:"importantEmails"`
	Categories          map[string]int `json:"categories"`
	ActivityByDay       []DayActivity  `json:"activityByDay"`
	TopSenders          []SenderCount  `json:"topSenders"`
	AverageResponseTime float64        `json:"averageResponseTime"`
	Error               string         `json:"error,omitempty"`
}

// GenerationUsageSnapshot - AI reply generation statistics
type GenerationUsageSnapshot struct {
	TotalGenerated        int            `json:"totalGenerated"`
	RepliesByType         map[string]int `json:"repliesByType"`
	RepliesByTone         map[string]int `json:"repliesByTone"`
	AverageGenerationTime float64        `json:"averageGenerationTime"`
	TemplatesUsed         int            `json:"templatesUsed"`
	AIOnlyGeneration      int            `json:"aiOnlyGeneration"`
	SuccessRate           float64        `json:"successRate"`
	Error                 string         `json:"error,omitempty"`
}

// DayCount - document count for one weekday
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// DocumentUsageSnapshot - document store statistics
type DocumentUsageSnapshot struct {
	TotalDocuments        int            `json:"totalDocuments"`
	DocumentsByType       map[string]int `json:"documentsByType"`
	DocumentsByCategory   map[string]int `json:"documentsByCategory"`
	AIGeneratedDocuments  int            `json:"aiGeneratedDocuments"`
	DocumentsThisPeriod   int            `json:"documentsThisPeriod"`
	AverageDocumentLength int            `json:"averageDocumentLength"`
	MostActiveDay         string         `json:"mostActiveDay"`
	DocumentsTrend        []DayCount     `json:"documentsTrend"`
	Error                 string         `json:"error,omitempty"`
}

// HourScore - productivity score for an hour of the day
type HourScore struct {
	Hour  int `json:"hour"`
	Score int `json:"score"`
}

// ProductivitySnapshot - derived productivity metrics
type ProductivitySnapshot struct {
	TotalWorkHours       float64        `json:"totalWorkHours"`
	EmailsPerHour        float64        `json:"emailsPerHour"`
	DocumentsPerWeek     float64        `json:"documentsPerWeek"`
	AITimeSaved          float64        `json:"aiTimeSaved"`
	ProductivityScore    int            `json:"productivityScore"`
	TopProductiveHours   []HourScore    `json:"topProductiveHours"`
	WorkloadDistribution map[string]int `json:"workloadDistribution"`
	WeeklyGoals          map[string]int `json:"weeklyGoals"`
}

// Collaborator - a document collaborator ranked by shared projects
type Collaborator struct {
	Name     string `json:"name"`
	Projects int    `json:"projects"`
	Hours    int    `json:"hours"`
}

// CollaborationSnapshot - team and communication metrics
type CollaborationSnapshot struct {
	ActiveProjects        int               `json:"activeProjects"`
	TeamMembers           int               `json:"teamMembers"`
	SharedDocuments       int               `json:"sharedDocuments"`
	CollaborationHours    int               `json:"collaborationHours"`
	TopCollaborators      []Collaborator    `json:"topCollaborators"`
	ProjectStatus         map[string]string `json:"projectStatus"`
	CommunicationChannels map[string]int    `json:"communicationChannels"`
}

// DashboardSnapshot - complete analytics response for the dashboard
type DashboardSnapshot struct {
	Mail          MailActivitySnapshot    `json:"emailStats"`
	Generation    GenerationUsageSnapshot `json:"aiUsage"`
	Documents     DocumentUsageSnapshot   `json:"documentStats"`
	Productivity  ProductivitySnapshot    `json:"productivity"`
	Collaboration CollaborationSnapshot   `json:"collaboration"`
	Period        string                  `json:"period"` // "week", "month", "year"
	GeneratedAt   time.Time               `json:"generatedAt"`
}

// DashboardResponse - success envelope
type DashboardResponse struct {
	Success bool              `json:"success"`
	Data    DashboardSnapshot `json:"data"`
}

// DashboardErrorResponse - failure envelope
type DashboardErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
