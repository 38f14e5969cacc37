package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatalf("expected default cors origins")
	}
	if cfg.Webhook.URL != "" {
		t.Fatalf("expected webhook disabled by default")
	}
}

func TestLoad_ParsesWebhook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("webhook:\n  url: https://hooks.example.com/x\n  events:\n    - idea_created\n    - quick_note_created\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Webhook.URL != "https://hooks.example.com/x" {
		t.Fatalf("unexpected webhook url %q", cfg.Webhook.URL)
	}
	if len(cfg.Webhook.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(cfg.Webhook.Events))
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatalf("expected default cors origins when omitted")
	}
}
