package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"unidash-be/internal/models"
)

// DocumentUsage is the document snapshot plus the collection it was computed from.
// The collection feeds the collaboration analyzer and never leaves the pipeline.
type DocumentUsage struct {
	Snapshot  models.DocumentUsageSnapshot
	Documents []models.Document
}

// DocumentAggregator computes document statistics from the document store.
type DocumentAggregator struct {
	store    DocumentStore
	taxonomy Taxonomy
	log      logrus.FieldLogger
}

func NewDocumentAggregator(store DocumentStore, taxonomy Taxonomy, log logrus.FieldLogger) *DocumentAggregator {
	return &DocumentAggregator{store: store, taxonomy: taxonomy, log: log}
}

// EmptyDocumentSnapshot is the zero-valued document snapshot with a zero-filled trend.
func EmptyDocumentSnapshot(taxonomy Taxonomy, err error) models.DocumentUsageSnapshot {
	snap := models.DocumentUsageSnapshot{
		DocumentsByType:     map[string]int{},
		DocumentsByCategory: map[string]int{},
		MostActiveDay:       NoDataDay,
		DocumentsTrend:      zeroTrend(taxonomy),
	}
	if err != nil {
		snap.Error = err.Error()
	}
	return snap
}

// Collect never fails; a store error yields the zero snapshot and an empty collection.
func (a *DocumentAggregator) Collect(ctx context.Context, period models.Period) (usage DocumentUsage) {
	defer func() {
		if r := recover(); r != nil {
			err := NewError(KindInternal, "collect documents", fmt.Errorf("panic: %v", r))
			a.log.WithError(err).Error("document aggregator panicked")
			usage = DocumentUsage{Snapshot: EmptyDocumentSnapshot(a.taxonomy, err)}
		}
	}()

	if a.store == nil {
		return DocumentUsage{Snapshot: EmptyDocumentSnapshot(a.taxonomy, nil)}
	}
	docs, err := a.store.ListAll(ctx)
	if err != nil {
		err = NewError(KindUpstreamDocuments, "list documents", err)
		a.log.WithError(err).WithField("source", "documents").Warn("document aggregator degraded to empty snapshot")
		return DocumentUsage{Snapshot: EmptyDocumentSnapshot(a.taxonomy, err)}
	}
	return DocumentUsage{Snapshot: SummarizeDocuments(a.taxonomy, period, docs), Documents: docs}
}

// SummarizeDocuments computes type, category, length and AI counts over the full
// collection, and the weekday trend over the documents created within the period.
func SummarizeDocuments(taxonomy Taxonomy, period models.Period, docs []models.Document) models.DocumentUsageSnapshot {
	snap := EmptyDocumentSnapshot(taxonomy, nil)
	snap.TotalDocuments = len(docs)

	totalWords := 0
	weekdays := make([]int, len(taxonomy.Weekdays))
	for _, doc := range docs {
		snap.DocumentsByType[taxonomy.DocumentType(doc.Category)]++
		snap.DocumentsByCategory[taxonomy.DocumentCategory(doc.Category)]++
		totalWords += wordCount(doc)
		if doc.AIGenerated {
			snap.AIGeneratedDocuments++
		}

		if period.Contains(doc.CreatedAt) {
			snap.DocumentsThisPeriod++
			day := int(doc.CreatedAt.In(period.End.Location()).Weekday())
			if day < len(weekdays) {
				weekdays[day]++
			}
		}
	}
	if len(docs) > 0 {
		snap.AverageDocumentLength = int(math.Round(float64(totalWords) / float64(len(docs))))
	}

	best := -1
	for i, name := range taxonomy.Weekdays {
		snap.DocumentsTrend[i] = models.DayCount{Day: name, Count: weekdays[i]}
		if weekdays[i] > 0 && (best < 0 || weekdays[i] > weekdays[best]) {
			best = i
		}
	}
	if best >= 0 {
		snap.MostActiveDay = taxonomy.Weekdays[best]
	}
	return snap
}

func wordCount(doc models.Document) int {
	if doc.WordCount > 0 {
		return doc.WordCount
	}
	return len(strings.Fields(doc.Content))
}

func zeroTrend(taxonomy Taxonomy) []models.DayCount {
	trend := make([]models.DayCount, len(taxonomy.Weekdays))
	for i, name := range taxonomy.Weekdays {
		trend[i] = models.DayCount{Day: name}
	}
	return trend
}
