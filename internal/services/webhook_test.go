package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/calebwray/ideawell-backend/internal/config"
	"github.com/calebwray/ideawell-backend/internal/logger"
)

func testSink(t *testing.T, url string, events []string) *webhookSink {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	sink := NewWebhookSink(config.WebhookConfig{URL: url, Events: events}, log, nil)
	ws, ok := sink.(*webhookSink)
	if !ok {
		t.Fatalf("expected live sink, got %T", sink)
	}
	return ws
}

func TestWebhookEnvelopeShape(t *testing.T) {
	var got webhookEnvelope
	received := make(chan struct{}, 1)
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode envelope: %v", err)
		}
		received <- struct{}{}
	}))
	defer endpoint.Close()

	sink := testSink(t, endpoint.URL, nil)
	sink.deliver(context.Background(), EventIdeaCreated, map[string]any{"id": "abc", "title": "Video"})

	select {
	case <-received:
	default:
		t.Fatal("endpoint never received the delivery")
	}
	if got.Event != "idea_created" {
		t.Fatalf("unexpected event %q", got.Event)
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not RFC3339: %v", got.Timestamp, err)
	}
	if got.Data["title"] != "Video" {
		t.Fatalf("unexpected data %v", got.Data)
	}
}

func TestWebhookEventFilter(t *testing.T) {
	sink := testSink(t, "http://localhost:0/hook", []string{"journal_entry_created"})
	if _, ok := sink.events[EventIdeaCreated]; ok {
		t.Fatal("idea_created should be filtered out")
	}
	if _, ok := sink.events[EventJournalEntryCreated]; !ok {
		t.Fatal("journal_entry_created should pass the filter")
	}
}

func TestWebhookDeliverNeverPanicsOnFailure(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	sink := &webhookSink{
		log:    log,
		client: resty.New().SetTimeout(200 * time.Millisecond),
		url:    "http://127.0.0.1:1/unreachable",
	}
	// Failure path only logs; it must not propagate.
	sink.deliver(context.Background(), EventQuickNoteCreated, map[string]any{"id": "x"})
}

func TestNoURLYieldsNoopSink(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	sink := NewWebhookSink(config.WebhookConfig{}, log, nil)
	if _, ok := sink.(*noopWebhookSink); !ok {
		t.Fatalf("expected noop sink, got %T", sink)
	}
	sink.Notify(EventIdeaUpdated, nil)
}
