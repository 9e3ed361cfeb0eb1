package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/pkg/gemini"
)

type capturedRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		Temperature      float64 `json:"temperature"`
		ResponseMimeType string  `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want %q", client.Model(), gemini.DefaultModel)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	var last capturedRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" || r.URL.RawQuery != "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		last = capturedRequest{}
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if last.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "{\"tasks\":"}, {"text": "[]}"}]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "test-model", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "extract tasks",
			Messages:          []gemini.Message{{Text: "call Bob"}},
			Temperature:       0.2,
			JSONMode:          true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"tasks":[]}` {
			t.Errorf("Text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 10 {
			t.Errorf("TotalTokens = %d, want 10", resp.Usage.TotalTokens)
		}
		if last.SystemInstruction == nil || last.SystemInstruction.Parts[0].Text != "extract tasks" {
			t.Error("system instruction not forwarded")
		}
		if last.Contents[0].Role != "user" {
			t.Errorf("empty role should default to user, got %q", last.Contents[0].Role)
		}
		if last.GenerationConfig == nil || last.GenerationConfig.ResponseMimeType != "application/json" {
			t.Error("JSON mode should set responseMimeType")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error on 500")
		}
		if !strings.Contains(err.Error(), "API error 500") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Unauthorized Flow", func(t *testing.T) {
		bad, _ := gemini.New(gemini.Config{APIKey: "wrong", Model: "test-model", APIURL: ts.URL})
		if _, err := bad.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Text: "hi"}},
		}); err == nil {
			t.Fatal("expected error with wrong key")
		}
	})
}

func TestClient_GenerateContent_TransportErrorOmitsKey(t *testing.T) {
	const key = "SECRET-KEY-123"

	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: key, APIURL: addr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Message{{Role: "user", Text: "hi"}},
	})
	if err == nil {
		t.Fatal("expected transport error from a closed server")
	}
	if strings.Contains(err.Error(), key) {
		t.Errorf("API key leaked into error: %v", err)
	}
}
