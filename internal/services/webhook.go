package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/calebwray/ideawell-backend/internal/config"
	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

type WebhookEvent string

const (
	EventIdeaCreated         WebhookEvent = "idea_created"
	EventIdeaUpdated         WebhookEvent = "idea_updated"
	EventIdeaStatusChanged   WebhookEvent = "idea_status_changed"
	EventQuickNoteCreated    WebhookEvent = "quick_note_created"
	EventQuickNoteUpdated    WebhookEvent = "quick_note_updated"
	EventJournalEntryCreated WebhookEvent = "journal_entry_created"
	EventJournalEntryUpdated WebhookEvent = "journal_entry_updated"
)

// WebhookSink receives record-change notifications. Dispatch never blocks the
// primary operation and failures are never surfaced to the caller; swap the
// implementation for a retrying outbox without touching callers.
type WebhookSink interface {
	Notify(event WebhookEvent, data map[string]any)
}

type webhookEnvelope struct {
	Event     string         `json:"event"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

type webhookSink struct {
	log          *logger.Logger
	client       *resty.Client
	url          string
	events       map[WebhookEvent]struct{}
	deliveryRepo repos.WebhookDeliveryRepo
}

// NewWebhookSink builds a sink from config. With no URL configured it returns
// a no-op sink so callers never need a nil check.
func NewWebhookSink(cfg config.WebhookConfig, log *logger.Logger, deliveryRepo repos.WebhookDeliveryRepo) WebhookSink {
	serviceLog := log.With("service", "WebhookSink")
	if cfg.URL == "" {
		serviceLog.Info("No webhook URL configured, dispatch disabled")
		return &noopWebhookSink{}
	}
	var events map[WebhookEvent]struct{}
	if len(cfg.Events) > 0 {
		events = make(map[WebhookEvent]struct{}, len(cfg.Events))
		for _, e := range cfg.Events {
			events[WebhookEvent(e)] = struct{}{}
		}
	}
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &webhookSink{
		log:          serviceLog,
		client:       client,
		url:          cfg.URL,
		events:       events,
		deliveryRepo: deliveryRepo,
	}
}

func (ws *webhookSink) Notify(event WebhookEvent, data map[string]any) {
	if ws.events != nil {
		if _, ok := ws.events[event]; !ok {
			return
		}
	}
	go ws.deliver(context.Background(), event, data)
}

// deliver runs the actual POST. Split from Notify so tests can call it
// synchronously.
func (ws *webhookSink) deliver(ctx context.Context, event WebhookEvent, data map[string]any) {
	envelope := webhookEnvelope{
		Event:     string(event),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}

	delivery := &types.WebhookDelivery{Event: string(event)}
	if raw, err := json.Marshal(envelope); err == nil {
		delivery.Payload = raw
	}

	resp, err := ws.client.R().
		SetContext(ctx).
		SetBody(envelope).
		Post(ws.url)
	switch {
	case err != nil:
		delivery.ErrorMessage = err.Error()
		ws.log.Warn("webhook delivery failed", "event", event, "error", err)
	case resp.IsError():
		delivery.StatusCode = resp.StatusCode()
		delivery.ErrorMessage = resp.Status()
		ws.log.Warn("webhook endpoint returned error", "event", event, "status", resp.StatusCode())
	default:
		delivery.Succeeded = true
		delivery.StatusCode = resp.StatusCode()
	}

	if ws.deliveryRepo != nil {
		if err := ws.deliveryRepo.Create(ctx, nil, delivery); err != nil {
			ws.log.Warn("failed to record webhook delivery", "event", event, "error", err)
		}
	}
}

type noopWebhookSink struct{}

func (noopWebhookSink) Notify(event WebhookEvent, data map[string]any) {}
