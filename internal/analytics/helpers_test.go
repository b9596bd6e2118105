package analytics

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"unidash-be/internal/models"
)

// Wednesday afternoon.
var testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

func testPolicy() Policy {
	p := DefaultPolicy()
	p.MailRPS = 0
	return p
}

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

// fakeMail is an in-memory mail service with offset-based page tokens.
type fakeMail struct {
	ids       []string
	messages  map[string]models.MailMessage
	failIDs   map[string]bool
	labels    map[string]string
	listErr   error
	labelsErr error
	delay     time.Duration
	hang      chan struct{}

	mu          sync.Mutex
	pageSizes   []int
	queries     []string
	detailCalls int

	inFlight    int32
	maxInFlight int32
}

func (f *fakeMail) ListMessages(ctx context.Context, query, pageToken string, pageSize int) (models.MailPage, error) {
	if f.hang != nil {
		<-f.hang
	}
	f.mu.Lock()
	f.pageSizes = append(f.pageSizes, pageSize)
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.listErr != nil {
		return models.MailPage{}, f.listErr
	}
	start := 0
	if pageToken != "" {
		start, _ = strconv.Atoi(pageToken)
	}
	end := start + pageSize
	if end > len(f.ids) {
		end = len(f.ids)
	}
	page := models.MailPage{IDs: append([]string(nil), f.ids[start:end]...)}
	if end < len(f.ids) {
		page.NextPageToken = strconv.Itoa(end)
	}
	return page, nil
}

func (f *fakeMail) GetMetadata(ctx context.Context, id string, headers []string) (models.MailMessage, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&f.maxInFlight)
		if n <= peak || atomic.CompareAndSwapInt32(&f.maxInFlight, peak, n) {
			break
		}
	}

	f.mu.Lock()
	f.detailCalls++
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.failIDs[id] {
		return models.MailMessage{}, fmt.Errorf("metadata %s: backend error", id)
	}
	if msg, ok := f.messages[id]; ok {
		return msg, nil
	}
	return models.MailMessage{ID: id, Date: testNow}, nil
}

func (f *fakeMail) ListLabels(ctx context.Context) (map[string]string, error) {
	if f.labelsErr != nil {
		return nil, f.labelsErr
	}
	return f.labels, nil
}

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("m%03d", i)
	}
	return ids
}
