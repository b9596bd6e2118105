package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"unidash-be/internal/models"
)

func newTestService(p Policy, usage UsageEventStore, docs DocumentStore) *Service {
	svc := NewService(p, usage, docs, nullLogger())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestBuildDashboard(t *testing.T) {
	usage := &MockUsageEventStore{}
	usage.On("FindByUserAndType", mock.Anything, "u1", models.UsageEventAIReply, testNow.AddDate(0, -1, 0)).
		Return([]models.UsageEvent{
			{Data: models.UsageEventData{ReplyType: "answer", Success: true}},
			{Data: models.UsageEventData{ReplyType: "answer", TemplateID: "t", Success: false}},
		}, nil)
	docs := &MockDocumentStore{}
	docs.On("ListAll", mock.Anything).Return(sampleDocuments(), nil)
	mail := &fakeMail{ids: []string{"a", "b", "c"}}

	snap, err := newTestService(testPolicy(), usage, docs).BuildDashboard(context.Background(), Request{
		UserID:      "u1",
		Mail:        mail,
		PeriodLabel: "month",
		StartDate:   "2025-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, snap.Period)
	assert.Equal(t, testNow, snap.GeneratedAt)
	assert.Equal(t, 3, snap.Mail.TotalEmails)
	assert.Equal(t, 2, snap.Generation.TotalGenerated)
	assert.Equal(t, 50.0, snap.Generation.SuccessRate)
	assert.Equal(t, 5, snap.Documents.TotalDocuments)
	assert.Equal(t, 4, snap.Collaboration.TeamMembers)
	assert.Equal(t, 100, sumValues(snap.Productivity.WorkloadDistribution))
	assert.Equal(t, 100, sumValues(snap.Collaboration.CommunicationChannels))
	usage.AssertExpectations(t)
	docs.AssertExpectations(t)
}

func TestBuildDashboard_MissingCredential(t *testing.T) {
	usage := &MockUsageEventStore{}
	docs := &MockDocumentStore{}

	_, err := newTestService(testPolicy(), usage, docs).BuildDashboard(context.Background(), Request{UserID: "u1"})

	require.Error(t, err)
	assert.Equal(t, KindAuth, KindOf(err))
	docs.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestBuildDashboard_DocumentStoreUnreachable(t *testing.T) {
	usage := &MockUsageEventStore{}
	usage.On("FindByUserAndType", mock.Anything, "u1", models.UsageEventAIReply, mock.Anything).Return([]models.UsageEvent{}, nil)
	docs := &MockDocumentStore{}
	docs.On("ListAll", mock.Anything).Return(nil, errors.New("no reachable servers"))

	snap, err := newTestService(testPolicy(), usage, docs).BuildDashboard(context.Background(), Request{
		UserID: "u1",
		Mail:   &fakeMail{ids: []string{"a"}},
	})

	require.NoError(t, err)
	assert.Contains(t, snap.Documents.Error, string(KindUpstreamDocuments))
	assert.Equal(t, "Н/Д", snap.Documents.MostActiveDay)
	assert.Len(t, snap.Documents.DocumentsTrend, 7)
	assert.Equal(t, 1, snap.Mail.TotalEmails)
	assert.Equal(t, 0, snap.Collaboration.TeamMembers)
	assert.Equal(t, 0, sumValues(snap.Collaboration.CommunicationChannels))
}

func TestBuildDashboard_HungCollectorFallsBack(t *testing.T) {
	p := testPolicy()
	p.CollectorTimeout = 50 * time.Millisecond
	usage := &MockUsageEventStore{}
	usage.On("FindByUserAndType", mock.Anything, "u1", models.UsageEventAIReply, mock.Anything).
		Return([]models.UsageEvent{{Data: models.UsageEventData{Success: true}}}, nil)
	docs := &MockDocumentStore{}
	docs.On("ListAll", mock.Anything).Return(sampleDocuments(), nil)

	hang := make(chan struct{})
	t.Cleanup(func() { close(hang) })

	started := time.Now()
	snap, err := newTestService(p, usage, docs).BuildDashboard(context.Background(), Request{
		UserID: "u1",
		Mail:   &fakeMail{hang: hang},
	})

	require.NoError(t, err)
	assert.Less(t, time.Since(started), 2*time.Second)
	assert.Contains(t, snap.Mail.Error, string(KindUpstreamMail))
	assert.Equal(t, 0, snap.Mail.TotalEmails)
	assert.Equal(t, 1, snap.Generation.TotalGenerated)
	assert.Equal(t, 5, snap.Documents.TotalDocuments)
}

func TestBuildDashboard_AllSourcesDown(t *testing.T) {
	usage := &MockUsageEventStore{}
	usage.On("FindByUserAndType", mock.Anything, "u1", models.UsageEventAIReply, mock.Anything).Return(nil, errors.New("down"))
	docs := &MockDocumentStore{}
	docs.On("ListAll", mock.Anything).Return(nil, errors.New("down"))

	snap, err := newTestService(testPolicy(), usage, docs).BuildDashboard(context.Background(), Request{
		UserID: "u1",
		Mail:   &fakeMail{listErr: errors.New("Gmail API error")},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, snap.Mail.Error)
	assert.NotEmpty(t, snap.Generation.Error)
	assert.NotEmpty(t, snap.Documents.Error)
	assert.Equal(t, 100.0, snap.Generation.SuccessRate)
	assert.Equal(t, 50, snap.Productivity.ProductivityScore)
	assert.NotNil(t, snap.Collaboration.TopCollaborators)
	assert.Equal(t, PeriodWeek, snap.Period)
}

func TestWithTimeout(t *testing.T) {
	fallback := func(err error) string { return "fallback: " + err.Error() }

	t.Run("result", func(t *testing.T) {
		got := withTimeout(context.Background(), time.Second, func(context.Context) string { return "ok" }, fallback)
		assert.Equal(t, "ok", got)
	})

	t.Run("deadline", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		got := withTimeout(context.Background(), 10*time.Millisecond, func(context.Context) string {
			<-release
			return "late"
		}, fallback)
		assert.Equal(t, "fallback: "+context.DeadlineExceeded.Error(), got)
	})

	t.Run("panic", func(t *testing.T) {
		got := withTimeout(context.Background(), time.Second, func(context.Context) string { panic("boom") }, fallback)
		assert.Equal(t, "fallback: panic: boom", got)
	})
}
