package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fastConfig returns a config pointed at url with rate limiting
// effectively disabled so tests do not wait on the limiter.
func fastConfig(url string) GeminiConfig {
	return GeminiConfig{
		BaseURL:           url,
		APIKey:            "test-key",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
	}
}

func candidateResponse(text string) string {
	return `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": ` + jsonString(text) + `}]},
			"finishReason": "STOP"
		}],
		"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 7}
	}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateParsesCandidate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Write([]byte(candidateResponse("You can view attendance from the dashboard.")))
	}))
	defer ts.Close()

	p := NewGeminiProvider(fastConfig(ts.URL))
	result, err := p.Generate(context.Background(), "gemini-2.0-flash", "where is attendance")
	if err != nil {
		t.Fatal(err)
	}

	if result.Content != "You can view attendance from the dashboard." {
		t.Errorf("content = %q", result.Content)
	}
	if result.InputTokens != 12 || result.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", result.InputTokens, result.OutputTokens)
	}
	if result.FinishReason != "STOP" {
		t.Errorf("finishReason = %q", result.FinishReason)
	}
	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "where is attendance" {
		t.Errorf("request contents = %+v", gotBody.Contents)
	}
}

func TestGenerateJoinsMultipleParts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Go to "},{"text":"the marks page."}]}}]}`))
	}))
	defer ts.Close()

	p := NewGeminiProvider(fastConfig(ts.URL))
	result, err := p.Generate(context.Background(), "m", "q")
	if err != nil {
		t.Fatal(err)
	}
	if result.Content != "Go to the marks page." {
		t.Errorf("content = %q", result.Content)
	}
}

func TestGenerateRetriesOnTooManyRequests(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(candidateResponse("recovered")))
	}))
	defer ts.Close()

	cfg := fastConfig(ts.URL)
	cfg.MaxRetries = 1
	p := NewGeminiProvider(cfg)

	result, err := p.Generate(context.Background(), "m", "q")
	if err != nil {
		t.Fatalf("expected recovery after retry, got %v", err)
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2", calls)
	}
	if result.Content != "recovered" {
		t.Errorf("content = %q", result.Content)
	}
}

func TestGenerateDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad prompt", http.StatusBadRequest)
	}))
	defer ts.Close()

	cfg := fastConfig(ts.URL)
	cfg.MaxRetries = 3
	p := NewGeminiProvider(cfg)

	_, err := p.Generate(context.Background(), "m", "q")
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	if !strings.Contains(err.Error(), "status 400") {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want exactly 1", calls)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cfg := fastConfig(ts.URL)
	cfg.MaxRetries = 1
	p := NewGeminiProvider(cfg)

	_, err := p.Generate(context.Background(), "m", "q")
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2", calls)
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	p := NewGeminiProvider(GeminiConfig{BaseURL: "http://example.invalid"})
	_, err := p.Generate(context.Background(), "m", "q")
	if err == nil || !strings.Contains(err.Error(), "GOOGLE_API_KEY") {
		t.Errorf("err = %v, want missing-key error", err)
	}
}

func TestGenerateRejectsEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	p := NewGeminiProvider(fastConfig(ts.URL))
	_, err := p.Generate(context.Background(), "m", "q")
	if err == nil {
		t.Fatal("expected an error for an empty candidate list")
	}
}
