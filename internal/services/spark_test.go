package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebwray/ideawell-backend/internal/logger"
)

func testChatClient(t *testing.T, upstream *httptest.Server) ChatClient {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return &chatClient{
		log:        log,
		baseURL:    upstream.URL,
		apiKey:     "test-key",
		model:      "test-model",
		httpClient: upstream.Client(),
		maxRetries: 0,
	}
}

func TestChatClientParsesSuggestions(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"1. A hook"}}]}`))
	}))
	defer upstream.Close()

	out, err := testChatClient(t, upstream).Complete(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "1. A hook" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestChatClientSurfacesStatusCodes(t *testing.T) {
	for _, code := range []int{429, 402, 500} {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream unhappy", code)
		}))
		_, err := testChatClient(t, upstream).Complete(context.Background(), "sys", "user")
		upstream.Close()
		if err == nil {
			t.Fatalf("expected error for status %d", code)
		}
		var httpErr *chatHTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected chatHTTPError for status %d, got %v", code, err)
		}
		if httpErr.StatusCode != code {
			t.Fatalf("expected status %d, got %d", code, httpErr.StatusCode)
		}
	}
}

func TestMapSparkErrorDistinguishesLimitAndQuota(t *testing.T) {
	if got := mapSparkError(&chatHTTPError{StatusCode: 429}); !errors.Is(got, ErrSparkRateLimited) {
		t.Fatalf("429 should map to rate limited, got %v", got)
	}
	if got := mapSparkError(&chatHTTPError{StatusCode: 402}); !errors.Is(got, ErrSparkQuotaExhausted) {
		t.Fatalf("402 should map to quota exhausted, got %v", got)
	}
	generic := &chatHTTPError{StatusCode: 500}
	if got := mapSparkError(generic); got != error(generic) {
		t.Fatalf("500 should pass through, got %v", got)
	}
}

func TestSparkPromptsCoverAllTypes(t *testing.T) {
	for _, st := range []string{SparkTypeHooks, SparkTypeOutline, SparkTypeTitles} {
		if _, ok := sparkPrompts[st]; !ok {
			t.Fatalf("missing prompt for spark type %q", st)
		}
	}
	if _, ok := sparkPrompts["remix"]; ok {
		t.Fatal("unexpected prompt for unknown spark type")
	}
}

func TestRetryableChatErrors(t *testing.T) {
	if isRetryableChatErr(&chatHTTPError{StatusCode: 429}) {
		t.Fatal("429 must not be retried")
	}
	if isRetryableChatErr(&chatHTTPError{StatusCode: 402}) {
		t.Fatal("402 must not be retried")
	}
	if !isRetryableChatErr(&chatHTTPError{StatusCode: 503}) {
		t.Fatal("503 should be retried")
	}
}
