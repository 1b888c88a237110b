package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusCall struct {
	id      int64
	status  models.NotificationStatus
	message string
}

// fakeStatuses запоминает обновления статусов уведомлений
type fakeStatuses struct {
	mu    sync.Mutex
	calls []statusCall
}

func (f *fakeStatuses) UpdateNotificationStatus(ctx context.Context, id int64, status models.NotificationStatus, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, statusCall{id: id, status: status, message: message})
	return nil
}

func newTestWorker(t *testing.T, url string) (*NotificationWorker, *fakeStatuses) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	statuses := &fakeStatuses{}
	return NewNotificationWorker(nil, statuses, logger, cfg), statuses
}

func testEvent(t *testing.T) (NotificationEvent, string) {
	t.Helper()
	event := NotificationEvent{
		NotificationID: 77,
		AlertID:        5,
		UserID:         8,
		AlertName:      "Home",
		CrimeIDs:       []int64{30, 31},
		Timestamp:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	event, payload := testEvent(t)

	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, statuses := newTestWorker(t, server.URL)
	worker.processEvent(context.Background(), event, payload)

	assert.JSONEq(t, payload, string(gotBody))
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	require.Len(t, statuses.calls, 1)
	assert.Equal(t, statusCall{id: 77, status: models.NotificationSent}, statuses.calls[0])
}

func TestProcessEvent_RetriesThenSucceeds(t *testing.T) {
	event, payload := testEvent(t)

	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, statuses := newTestWorker(t, server.URL)
	worker.processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	require.Len(t, statuses.calls, 1)
	assert.Equal(t, models.NotificationSent, statuses.calls[0].status)
}

func TestProcessEvent_MarksFailedAfterRetries(t *testing.T) {
	event, payload := testEvent(t)

	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, statuses := newTestWorker(t, server.URL)
	worker.processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	require.Len(t, statuses.calls, 1)
	assert.Equal(t, models.NotificationFailed, statuses.calls[0].status)
	assert.Contains(t, statuses.calls[0].message, "status code 500")
}

func TestProcessEvent_NoURLLeavesPending(t *testing.T) {
	event, payload := testEvent(t)

	worker, statuses := newTestWorker(t, "")
	worker.processEvent(context.Background(), event, payload)

	assert.Empty(t, statuses.calls)
}

func TestDeliver_StopsOnCanceledContext(t *testing.T) {
	_, payload := testEvent(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	worker, _ := newTestWorker(t, server.URL)
	worker.cfg.WebhookBaseDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := worker.deliver(ctx, logrus.NewEntry(worker.logger), payload)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewNotificationEvent(t *testing.T) {
	alert := &models.Alert{ID: 5, UserID: 8, Name: "Home", NotificationContact: "+254700000000"}
	n := &models.AlertNotification{
		ID:                 77,
		CrimeIDs:           []int64{30},
		NotificationMethod: "sms",
		SentAt:             time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	event := NewNotificationEvent(alert, n)

	assert.Equal(t, int64(77), event.NotificationID)
	assert.Equal(t, "sms", event.NotificationMethod)
	assert.Equal(t, "+254700000000", event.Contact)
	assert.Equal(t, n.SentAt, event.Timestamp)
}
