package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIClientComplete(t *testing.T) {
	var gotAuth string
	var gotReq ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "drafted contract"}},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), "test-key")
	client.baseURL = srv.URL

	resp, err := client.Complete(context.Background(), ChatCompletionRequest{
		Temperature: 0.3,
		Messages: []ChatMessageParam{
			{Role: "system", Content: "sys"},
			{Role: "user", Content: "usr"},
		},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "drafted contract" {
		t.Fatalf("content mismatch: %q", resp.Content)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header mismatch: %q", gotAuth)
	}
	if gotReq.Model != defaultOpenAIModel {
		t.Fatalf("expected default model fill-in, got %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.3 {
		t.Fatalf("temperature mismatch: %v", gotReq.Temperature)
	}
}

func TestOpenAIClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), "test-key")
	client.baseURL = srv.URL

	_, err := client.Complete(context.Background(), ChatCompletionRequest{
		Messages: []ChatMessageParam{{Role: "user", Content: "x"}},
	})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestOpenAIClientEmptyAPIKey(t *testing.T) {
	client := NewOpenAIClient(nil, "")
	if _, err := client.Complete(context.Background(), ChatCompletionRequest{}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestOpenAIClientNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.Client(), "test-key")
	client.baseURL = srv.URL

	if _, err := client.Complete(context.Background(), ChatCompletionRequest{
		Messages: []ChatMessageParam{{Role: "user", Content: "x"}},
	}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
