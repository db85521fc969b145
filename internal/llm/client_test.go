package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Model:   "google/gemini-2.5-flash",
	}, nil)
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "analysis text"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reply, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "you are a triage assistant"},
		{Role: "user", Content: "headache"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if reply != "analysis text" {
		t.Errorf("Expected 'analysis text', got %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer credential, got %q", gotAuth)
	}
	if gotReq.Model != "google/gemini-2.5-flash" {
		t.Errorf("Expected configured model, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("Unexpected messages: %+v", gotReq.Messages)
	}
}

func TestComplete_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		expected error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"quota exhausted", http.StatusPaymentRequired, ErrQuotaExhausted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestComplete_ServerErrorIsGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrQuotaExhausted) {
		t.Errorf("500 must not map to a typed error, got %v", err)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, ErrEmptyReply) {
		t.Errorf("Expected ErrEmptyReply, got %v", err)
	}
}

func TestComplete_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [{"message": {"content": "late"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, []Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}

func TestLoadConfig_RequiresAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error when LLM_API_KEY is unset")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "key-123")
	t.Setenv("LLM_GATEWAY_URL", "")
	t.Setenv("LLM_MODEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.BaseURL != "https://ai.gateway.lovable.dev/v1/chat/completions" {
		t.Errorf("Unexpected default URL: %s", cfg.BaseURL)
	}
	if cfg.Model != "google/gemini-2.5-flash" {
		t.Errorf("Unexpected default model: %s", cfg.Model)
	}
}
