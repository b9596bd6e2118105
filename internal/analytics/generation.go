package analytics

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"unidash-be/internal/models"
)

// GenerationAggregator tallies AI reply generation statistics from the usage log.
type GenerationAggregator struct {
	store UsageEventStore
	log   logrus.FieldLogger
}

func NewGenerationAggregator(store UsageEventStore, log logrus.FieldLogger) *GenerationAggregator {
	return &GenerationAggregator{store: store, log: log}
}

// EmptyGenerationSnapshot is the default shape: nothing generated, 100% success.
func EmptyGenerationSnapshot(err error) models.GenerationUsageSnapshot {
	snap := models.GenerationUsageSnapshot{
		RepliesByType: map[string]int{},
		RepliesByTone: map[string]int{},
		SuccessRate:   100,
	}
	if err != nil {
		snap.Error = err.Error()
	}
	return snap
}

// Collect never fails; a missing user or a store error yields the default shape.
func (a *GenerationAggregator) Collect(ctx context.Context, userID string, period models.Period) (snap models.GenerationUsageSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			err := NewError(KindInternal, "collect generation usage", fmt.Errorf("panic: %v", r))
			a.log.WithError(err).Error("generation aggregator panicked")
			snap = EmptyGenerationSnapshot(err)
		}
	}()

	if userID == "" || a.store == nil {
		return EmptyGenerationSnapshot(nil)
	}

	events, err := a.store.FindByUserAndType(ctx, userID, models.UsageEventAIReply, period.Start)
	if err != nil {
		err = NewError(KindUpstreamUsage, "find usage events", err)
		a.log.WithError(err).WithField("source", "usage").Warn("generation aggregator degraded to default snapshot")
		return EmptyGenerationSnapshot(err)
	}
	return TallyGeneration(events)
}

// TallyGeneration computes the generation snapshot from ai_reply events.
func TallyGeneration(events []models.UsageEvent) models.GenerationUsageSnapshot {
	snap := EmptyGenerationSnapshot(nil)
	if len(events) == 0 {
		return snap
	}

	var totalTime float64
	successes := 0
	for _, ev := range events {
		d := ev.Data
		if d.ReplyType != "" {
			snap.RepliesByType[d.ReplyType]++
		}
		if d.Tone != "" {
			snap.RepliesByTone[d.Tone]++
		}
		if d.TemplateID != "" {
			snap.TemplatesUsed++
		} else {
			snap.AIOnlyGeneration++
		}
		totalTime += d.GenerationTime
		if d.Success {
			successes++
		}
	}

	snap.TotalGenerated = len(events)
	snap.AverageGenerationTime = totalTime / float64(len(events))
	snap.SuccessRate = float64(successes) / float64(len(events)) * 100
	return snap
}
