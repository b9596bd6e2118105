package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"unidash-be/internal/models"
)

// Request is one dashboard build.
type Request struct {
	UserID      string
	Mail        MailClient
	PeriodLabel string
	// StartDate and EndDate are accepted from the client but do not affect the window.
	StartDate string
	EndDate   string
}

// Service assembles the dashboard snapshot from the three collectors.
type Service struct {
	policy     Policy
	taxonomy   Taxonomy
	mail       *MailCollector
	generation *GenerationAggregator
	documents  *DocumentAggregator
	normalizer *Normalizer
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewService(policy Policy, usage UsageEventStore, docs DocumentStore, log logrus.FieldLogger) *Service {
	taxonomy := DefaultTaxonomy()
	return &Service{
		policy:     policy,
		taxonomy:   taxonomy,
		mail:       NewMailCollector(policy, taxonomy, log),
		generation: NewGenerationAggregator(usage, log),
		documents:  NewDocumentAggregator(docs, taxonomy, log),
		normalizer: NewNormalizer(taxonomy),
		log:        log,
		now:        time.Now,
	}
}

// BuildDashboard returns a structurally complete snapshot even when sources fail.
// Only a missing credential or an internal failure yields an error.
func (s *Service) BuildDashboard(ctx context.Context, req Request) (snap models.DashboardSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewError(KindInternal, "build dashboard", fmt.Errorf("panic: %v", r))
			s.log.WithError(err).Error("dashboard build panicked")
			snap = models.DashboardSnapshot{}
		}
	}()

	if req.UserID == "" || req.Mail == nil {
		return models.DashboardSnapshot{}, NewError(KindAuth, "build dashboard", fmt.Errorf("missing user or mail credential"))
	}

	started := s.now()
	period := ResolvePeriod(req.PeriodLabel, started)
	log := s.log.WithFields(logrus.Fields{
		"userId": req.UserID,
		"period": period.Label,
	})
	if req.StartDate != "" || req.EndDate != "" {
		log.WithFields(logrus.Fields{
			"startDate": req.StartDate,
			"endDate":   req.EndDate,
		}).Debug("explicit date range ignored, using period window")
	}

	var (
		mail models.MailActivitySnapshot
		gen  models.GenerationUsageSnapshot
		docs DocumentUsage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mail = withTimeout(gctx, s.policy.CollectorTimeout,
			func(ctx context.Context) models.MailActivitySnapshot { return s.mail.Collect(ctx, req.Mail, period) },
			func(err error) models.MailActivitySnapshot {
				return EmptyMailSnapshot(NewError(KindUpstreamMail, "collect mail", err))
			})
		return nil
	})
	g.Go(func() error {
		gen = withTimeout(gctx, s.policy.CollectorTimeout,
			func(ctx context.Context) models.GenerationUsageSnapshot {
				return s.generation.Collect(ctx, req.UserID, period)
			},
			func(err error) models.GenerationUsageSnapshot {
				return EmptyGenerationSnapshot(NewError(KindUpstreamUsage, "collect generation usage", err))
			})
		return nil
	})
	g.Go(func() error {
		docs = withTimeout(gctx, s.policy.CollectorTimeout,
			func(ctx context.Context) DocumentUsage { return s.documents.Collect(ctx, period) },
			func(err error) DocumentUsage {
				return DocumentUsage{Snapshot: EmptyDocumentSnapshot(s.taxonomy, NewError(KindUpstreamDocuments, "collect documents", err))}
			})
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.DashboardSnapshot{}, NewError(KindInternal, "collect", err)
	}

	var (
		productivity  models.ProductivitySnapshot
		collaboration models.CollaborationSnapshot
	)
	d := new(errgroup.Group)
	d.Go(func() error {
		productivity = ScoreProductivity(s.policy, period, mail, gen, docs.Snapshot)
		return nil
	})
	d.Go(func() error {
		collaboration = AnalyzeCollaboration(s.policy, s.taxonomy, docs.Documents)
		return nil
	})
	if err := d.Wait(); err != nil {
		return models.DashboardSnapshot{}, NewError(KindInternal, "derive", err)
	}

	snap = s.normalizer.Normalize(models.DashboardSnapshot{
		Mail:          mail,
		Generation:    gen,
		Documents:     docs.Snapshot,
		Productivity:  productivity,
		Collaboration: collaboration,
	})
	snap.Period = period.Label
	snap.GeneratedAt = s.now()

	log.WithFields(logrus.Fields{
		"duration":       s.now().Sub(started).String(),
		"mailError":      mail.Error,
		"usageError":     gen.Error,
		"documentsError": docs.Snapshot.Error,
	}).Info("dashboard built")
	return snap, nil
}

// withTimeout runs fn under d and returns fallback when the deadline or the parent context fires first.
// A fn that panics also yields the fallback.
func withTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) T, fallback func(error) T) T {
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	done := make(chan T, 1)
	failed := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				failed <- fmt.Errorf("panic: %v", r)
			}
		}()
		done <- fn(ctx)
	}()

	select {
	case v := <-done:
		return v
	case err := <-failed:
		return fallback(err)
	case <-ctx.Done():
		return fallback(ctx.Err())
	}
}
