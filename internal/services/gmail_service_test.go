package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"unidash-be/config"
	"unidash-be/internal/analytics"
	"unidash-be/internal/models"
)

func newTestGmailClient(t *testing.T, handler http.Handler) *GmailClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	srv, err := gmail.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return NewGmailClient(srv)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestGmailClient_ListMessages(t *testing.T) {
	var gotQuery, gotToken, gotMax string
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotToken = r.URL.Query().Get("pageToken")
		gotMax = r.URL.Query().Get("maxResults")
		writeJSON(w, map[string]any{
			"messages":      []map[string]string{{"id": "m1"}, {"id": "m2"}},
			"nextPageToken": "next-1",
		})
	})
	client := newTestGmailClient(t, mux)

	page, err := client.ListMessages(context.Background(), "after:1 before:2", "tok", 100)

	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, page.IDs)
	assert.Equal(t, "next-1", page.NextPageToken)
	assert.Equal(t, "after:1 before:2", gotQuery)
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "100", gotMax)
}

func TestGmailClient_ListMessagesError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":503,"message":"backend"}}`, http.StatusServiceUnavailable)
	})
	client := newTestGmailClient(t, mux)

	_, err := client.ListMessages(context.Background(), "", "", 10)

	assert.Error(t, err)
}

func TestGmailClient_GetMetadata(t *testing.T) {
	var gotFormat string
	var gotHeaders []string
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages/m1", func(w http.ResponseWriter, r *http.Request) {
		gotFormat = r.URL.Query().Get("format")
		gotHeaders = r.URL.Query()["metadataHeaders"]
		writeJSON(w, map[string]any{
			"id":           "m1",
			"labelIds":     []string{"INBOX", "UNREAD"},
			"internalDate": "1700000000000",
			"payload": map[string]any{
				"headers": []map[string]string{
					{"name": "From", "value": "Деканат ФИТ <dekanat@uni.ru>"},
					{"name": "Subject", "value": "Расписание"},
					{"name": "Date", "value": "Wed, 12 Mar 2025 10:00:00 +0300"},
				},
			},
		})
	})
	client := newTestGmailClient(t, mux)

	msg, err := client.GetMetadata(context.Background(), "m1", []string{"From", "Subject", "Date"})

	require.NoError(t, err)
	assert.Equal(t, "metadata", gotFormat)
	assert.Equal(t, []string{"From", "Subject", "Date"}, gotHeaders)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, models.EmailAddress{Name: "Деканат ФИТ", Email: "dekanat@uni.ru"}, msg.From)
	assert.Equal(t, "Расписание", msg.Subject)
	assert.Equal(t, []string{"INBOX", "UNREAD"}, msg.LabelIDs)
	assert.True(t, msg.Date.Equal(time.Date(2025, 3, 12, 7, 0, 0, 0, time.UTC)))
}

func TestGmailClient_ListLabels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/labels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"labels": []map[string]string{
				{"id": "INBOX", "name": "INBOX", "type": "system"},
				{"id": "Label_7", "name": "Category_meetings", "type": "user"},
			},
		})
	})
	client := newTestGmailClient(t, mux)

	names, err := client.ListLabels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"INBOX": "INBOX", "Label_7": "Category_meetings"}, names)
}

func TestMapMetadata_DateFallback(t *testing.T) {
	msg := mapMetadata(&gmail.Message{
		Id:           "x",
		InternalDate: 1700000000123,
		Payload: &gmail.MessagePart{Headers: []*gmail.MessagePartHeader{
			{Name: "Date", Value: "not a date"},
		}},
	})
	assert.Equal(t, time.UnixMilli(1700000000123), msg.Date)

	bare := mapMetadata(&gmail.Message{Id: "y"})
	assert.True(t, bare.Date.IsZero())
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in   string
		want models.EmailAddress
	}{
		{"Alice <alice@uni.ru>", models.EmailAddress{Name: "Alice", Email: "alice@uni.ru"}},
		{`"Bob, PhD" <bob@uni.ru>`, models.EmailAddress{Name: "Bob, PhD", Email: "bob@uni.ru"}},
		{"carol@uni.ru", models.EmailAddress{Email: "carol@uni.ru"}},
		{"Broken Name <not-an-address", models.EmailAddress{Name: "Broken Name", Email: "not-an-address"}},
		{"", models.EmailAddress{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAddress(tt.in))
		})
	}
}

func TestNewMailClient_NoCredential(t *testing.T) {
	s := NewGmailService(&config.Config{})

	_, err := s.NewMailClient(context.Background(), &models.User{Email: "a@uni.ru"})

	require.Error(t, err)
	assert.Equal(t, analytics.KindAuth, analytics.KindOf(err))
}

func TestNewMailClient_WithToken(t *testing.T) {
	s := NewGmailService(&config.Config{GoogleClientID: "id", GoogleClientSecret: "secret"})

	client, err := s.NewMailClient(context.Background(), &models.User{
		GoogleAccessToken: "access",
		GoogleTokenExpiry: time.Now().Add(time.Hour),
	})

	require.NoError(t, err)
	assert.NotNil(t, client)
}
