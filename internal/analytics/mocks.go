package analytics

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"unidash-be/internal/models"
)

// MockUsageEventStore is a testify mock of UsageEventStore.
type MockUsageEventStore struct {
	mock.Mock
}

var _ UsageEventStore = &MockUsageEventStore{} // Compile-time check

// FindByUserAndType implements UsageEventStore.
func (m *MockUsageEventStore) FindByUserAndType(ctx context.Context, userID, eventType string, since time.Time) ([]models.UsageEvent, error) {
	ret := m.Called(ctx, userID, eventType, since)
	events, _ := ret.Get(0).([]models.UsageEvent)
	return events, ret.Error(1)
}

// MockDocumentStore is a testify mock of DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

var _ DocumentStore = &MockDocumentStore{} // Compile-time check

// ListAll implements DocumentStore.
func (m *MockDocumentStore) ListAll(ctx context.Context) ([]models.Document, error) {
	ret := m.Called(ctx)
	docs, _ := ret.Get(0).([]models.Document)
	return docs, ret.Error(1)
}
