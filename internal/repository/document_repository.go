package repository

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unidash-be/internal/analytics"
	"unidash-be/internal/models"
)

type DocumentRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

var _ analytics.DocumentStore = (*DocumentRepository)(nil)

func NewDocumentRepository(db *mongo.Database, breaker *gobreaker.CircuitBreaker) *DocumentRepository {
	return &DocumentRepository{
		collection: db.Collection("documents"),
		breaker:    breaker,
	}
}

// ListAll returns every document, most recently updated first.
func (r *DocumentRepository) ListAll(ctx context.Context) ([]models.Document, error) {
	return execute(r.breaker, func() ([]models.Document, error) {
		opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

		cursor, err := r.collection.Find(ctx, bson.M{}, opts)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		docs := []models.Document{}
		if err = cursor.All(ctx, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	})
}
