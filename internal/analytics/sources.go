package analytics

import (
	"context"
	"time"

	"unidash-be/internal/models"
)

// MailClient is the narrow mail service surface the pipeline reads from.
type MailClient interface {
	ListMessages(ctx context.Context, query, pageToken string, pageSize int) (models.MailPage, error)
	GetMetadata(ctx context.Context, id string, headers []string) (models.MailMessage, error)
	ListLabels(ctx context.Context) (map[string]string, error) // label id -> name
}

// UsageEventStore reads the usage-event log.
type UsageEventStore interface {
	FindByUserAndType(ctx context.Context, userID, eventType string, since time.Time) ([]models.UsageEvent, error)
}

// DocumentStore lists every document of the tenant.
type DocumentStore interface {
	ListAll(ctx context.Context) ([]models.Document, error)
}
