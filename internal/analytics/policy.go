package analytics

import (
	"time"

	"unidash-be/config"
)

// Policy holds the tunable constants of the dashboard pipeline.
type Policy struct {
	ListCap         int // messages listed per request
	DetailCap       int // messages inspected per request
	DetailBatchSize int // concurrent metadata fetches per batch
	MaxPageSize     int // mail service max results per page
	MailRPS         int // 0 disables the limiter

	CollectorTimeout time.Duration

	WorkHoursPerActiveDay   float64
	MinutesSavedPerReply    float64
	GoalMultiplier          float64
	PlaceholderResponseTime float64
	HoursPerProject         int
	ProjectStatusLimit      int
	TopSendersLimit         int
	TopCollaboratorsLimit   int
}

// DefaultPolicy returns the production defaults.
func DefaultPolicy() Policy {
	return Policy{
		ListCap:                 500,
		DetailCap:               200,
		DetailBatchSize:         10,
		MaxPageSize:             500,
		MailRPS:                 40,
		CollectorTimeout:        20 * time.Second,
		WorkHoursPerActiveDay:   6,
		MinutesSavedPerReply:    5,
		GoalMultiplier:          1.2,
		PlaceholderResponseTime: 2.5,
		HoursPerProject:         2,
		ProjectStatusLimit:      5,
		TopSendersLimit:         5,
		TopCollaboratorsLimit:   5,
	}
}

// PolicyFromConfig overlays the configured values on top of DefaultPolicy.
// Non-positive values keep the default.
func PolicyFromConfig(cfg config.AnalyticsConfig) Policy {
	p := DefaultPolicy()
	if cfg.ListCap > 0 {
		p.ListCap = cfg.ListCap
	}
	if cfg.DetailCap > 0 {
		p.DetailCap = cfg.DetailCap
	}
	if cfg.BatchSize > 0 {
		p.DetailBatchSize = cfg.BatchSize
	}
	if cfg.MailRPS >= 0 {
		p.MailRPS = cfg.MailRPS
	}
	if cfg.CollectorTimeout > 0 {
		p.CollectorTimeout = cfg.CollectorTimeout
	}
	if cfg.WorkHoursPerDay > 0 {
		p.WorkHoursPerActiveDay = cfg.WorkHoursPerDay
	}
	if cfg.MinutesPerReply > 0 {
		p.MinutesSavedPerReply = cfg.MinutesPerReply
	}
	if cfg.GoalMultiplier > 0 {
		p.GoalMultiplier = cfg.GoalMultiplier
	}
	return p
}
