package analytics

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"unidash-be/internal/models"
	mailrate "unidash-be/internal/rate"
	"unidash-be/internal/utils"
)

var metadataHeaders = []string{"From", "Subject", "Date"}

// MailCollector builds the mail activity snapshot from the mail service.
type MailCollector struct {
	policy     Policy
	taxonomy   Taxonomy
	classifier *Classifier
	log        logrus.FieldLogger
	newLimiter func() *rate.Limiter
}

func NewMailCollector(policy Policy, taxonomy Taxonomy, log logrus.FieldLogger) *MailCollector {
	return &MailCollector{
		policy:     policy,
		taxonomy:   taxonomy,
		classifier: NewClassifier(taxonomy),
		log:        log,
		newLimiter: func() *rate.Limiter {
			return mailrate.NewMailLimiter(policy.MailRPS)
		},
	}
}

// Collect never fails: any unrecoverable error yields the zero snapshot with an error marker.
func (c *MailCollector) Collect(ctx context.Context, client MailClient, period models.Period) (snap models.MailActivitySnapshot) {
	defer func() {
		if r := recover(); r != nil {
			err := NewError(KindInternal, "collect mail", fmt.Errorf("panic: %v", r))
			c.log.WithError(err).Error("mail collector panicked")
			snap = EmptyMailSnapshot(err)
		}
	}()

	snap, err := c.collect(ctx, client, c.newLimiter(), period)
	if err != nil {
		c.log.WithError(err).WithField("source", "mail").Warn("mail collector degraded to empty snapshot")
		return EmptyMailSnapshot(err)
	}
	return snap
}

// EmptyMailSnapshot is the zero-valued mail snapshot. A non-nil err is recorded as the error marker.
func EmptyMailSnapshot(err error) models.MailActivitySnapshot {
	snap := models.MailActivitySnapshot{
		Categories:    map[string]int{},
		ActivityByDay: []models.DayActivity{},
		TopSenders:    []models.SenderCount{},
	}
	if err != nil {
		snap.Error = err.Error()
	}
	return snap
}

func (c *MailCollector) collect(ctx context.Context, client MailClient, limiter *rate.Limiter, period models.Period) (models.MailActivitySnapshot, error) {
	if client == nil {
		return models.MailActivitySnapshot{}, NewError(KindAuth, "collect mail", fmt.Errorf("no mail client"))
	}

	query := fmt.Sprintf("after:%d before:%d", period.Start.Unix(), period.End.Unix())
	ids, err := c.listMessageIDs(ctx, client, limiter, query)
	if err != nil {
		return models.MailActivitySnapshot{}, NewError(KindUpstreamMail, "list messages", err)
	}

	selected := ids
	if len(selected) > c.policy.DetailCap {
		selected = selected[:c.policy.DetailCap]
	}
	messages := c.fetchDetails(ctx, client, limiter, selected)
	c.resolveLabels(ctx, client, limiter, messages)

	snap := EmptyMailSnapshot(nil)
	snap.TotalEmails = len(ids)
	snap.AverageResponseTime = c.policy.PlaceholderResponseTime
	for i := range messages {
		msg := &messages[i]
		category := c.classifier.Classify(msg.Labels, msg.Subject, msg.From.Display()+" "+msg.From.Email)
		snap.Categories[category]++
		if msg.HasLabel("UNREAD") {
			snap.UnreadEmails++
		}
		if msg.HasLabel("STARRED") {
			snap.StarredEmails++
		}
		if msg.HasLabel("IMPORTANT") {
			snap.ImportantEmails++
		}
	}
	snap.ActivityByDay = c.activityByDay(messages, period)
	snap.TopSenders = c.topSenders(messages)

	c.log.WithFields(logrus.Fields{
		"listed":   len(ids),
		"detailed": len(messages),
	}).Debug("mail activity collected")
	return snap, nil
}

// listMessageIDs follows continuation tokens until ListCap is reached or the listing ends.
func (c *MailCollector) listMessageIDs(ctx context.Context, client MailClient, limiter *rate.Limiter, query string) ([]string, error) {
	var (
		ids   []string
		token string
	)
	for len(ids) < c.policy.ListCap {
		pageSize := c.policy.ListCap - len(ids)
		if pageSize > c.policy.MaxPageSize {
			pageSize = c.policy.MaxPageSize
		}
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		page, err := client.ListMessages(ctx, query, token, pageSize)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page.IDs...)
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}
	if len(ids) > c.policy.ListCap {
		ids = ids[:c.policy.ListCap]
	}
	return ids, nil
}

// fetchDetails runs batches sequentially and the items of one batch concurrently.
// Failed items are dropped.
func (c *MailCollector) fetchDetails(ctx context.Context, client MailClient, limiter *rate.Limiter, ids []string) []models.MailMessage {
	batchSize := c.policy.DetailBatchSize
	if batchSize <= 0 {
		batchSize = 1
	}

	messages := make([]models.MailMessage, 0, len(ids))
	failed := 0
	for start := 0; start < len(ids); start += batchSize {
		if ctx.Err() != nil {
			failed += len(ids) - start
			break
		}
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		slots := make([]*models.MailMessage, len(batch))
		var wg sync.WaitGroup
		for i, id := range batch {
			wg.Add(1)
			go func(idx int, id string) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						slots[idx] = nil
					}
				}()
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				msg, err := client.GetMetadata(ctx, id, metadataHeaders)
				if err != nil {
					c.log.WithError(err).WithField("messageId", id).Debug("metadata fetch failed")
					return
				}
				msg.Subject = utils.SanitizeHTML(utils.ToValidUTF8(msg.Subject))
				slots[idx] = &msg
			}(i, id)
		}
		wg.Wait()

		for _, msg := range slots {
			if msg == nil {
				failed++
				continue
			}
			messages = append(messages, *msg)
		}
	}
	if failed > 0 {
		c.log.WithField("failed", failed).Info("some message details could not be fetched")
	}
	return messages
}

// resolveLabels attaches label names; raw ids stay in place when the catalog is unavailable.
func (c *MailCollector) resolveLabels(ctx context.Context, client MailClient, limiter *rate.Limiter, messages []models.MailMessage) {
	var names map[string]string
	if err := limiter.Wait(ctx); err == nil {
		names, err = client.ListLabels(ctx)
		if err != nil {
			c.log.WithError(err).Warn("label catalog unavailable, keeping raw label ids")
			names = nil
		}
	}

	for i := range messages {
		labels := make([]string, len(messages[i].LabelIDs))
		for j, id := range messages[i].LabelIDs {
			if name, ok := names[id]; ok && name != "" {
				labels[j] = name
			} else {
				labels[j] = id
			}
		}
		messages[i].Labels = labels
	}
}

func (c *MailCollector) activityByDay(messages []models.MailMessage, period models.Period) []models.DayActivity {
	loc := period.End.Location()
	counts := make(map[string]int, len(messages))
	for _, msg := range messages {
		if msg.Date.IsZero() {
			continue
		}
		counts[msg.Date.In(loc).Format("2006-01-02")]++
	}

	days := make([]models.DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := period.End.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		days = append(days, models.DayActivity{
			Date:    key,
			Count:   counts[key],
			DayName: c.taxonomy.Weekdays[int(day.Weekday())],
		})
	}
	return days
}

func (c *MailCollector) topSenders(messages []models.MailMessage) []models.SenderCount {
	counts := map[string]int{}
	for _, msg := range messages {
		sender := msg.From.Display()
		if sender == "" {
			continue
		}
		counts[sender]++
	}

	senders := make([]models.SenderCount, 0, len(counts))
	for sender, n := range counts {
		senders = append(senders, models.SenderCount{Sender: sender, Count: n})
	}
	sort.Slice(senders, func(i, j int) bool {
		if senders[i].Count == senders[j].Count {
			return senders[i].Sender < senders[j].Sender
		}
		return senders[i].Count > senders[j].Count
	})
	if len(senders) > c.policy.TopSendersLimit {
		senders = senders[:c.policy.TopSendersLimit]
	}
	return senders
}
