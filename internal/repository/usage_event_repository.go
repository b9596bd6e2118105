package repository

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unidash-be/internal/analytics"
	"unidash-be/internal/models"
)

type UsageEventRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

var _ analytics.UsageEventStore = (*UsageEventRepository)(nil)

func NewUsageEventRepository(db *mongo.Database, breaker *gobreaker.CircuitBreaker) *UsageEventRepository {
	return &UsageEventRepository{
		collection: db.Collection("usage_events"),
		breaker:    breaker,
	}
}

// FindByUserAndType returns the user's events of eventType at or after since, newest first.
func (r *UsageEventRepository) FindByUserAndType(ctx context.Context, userID, eventType string, since time.Time) ([]models.UsageEvent, error) {
	return execute(r.breaker, func() ([]models.UsageEvent, error) {
		filter := bson.M{
			"userId":    userID,
			"type":      eventType,
			"timestamp": bson.M{"$gte": since},
		}
		opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

		cursor, err := r.collection.Find(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		events := []models.UsageEvent{}
		if err = cursor.All(ctx, &events); err != nil {
			return nil, err
		}
		return events, nil
	})
}
