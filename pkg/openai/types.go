package openai

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Vendor selects endpoint defaults
// for BaseURL and Model when those are empty.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}

	vendor, known := Vendors[c.Vendor]
	if c.BaseURL == "" {
		if !known {
			return fmt.Errorf("openai: BaseURL is required for vendor %q", c.Vendor)
		}
		c.BaseURL = vendor.BaseURL
	}
	if c.Model == "" {
		if !known {
			return fmt.Errorf("openai: Model is required for vendor %q", c.Vendor)
		}
		c.Model = vendor.DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// ChatRequest is the body of POST /chat/completions.
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage is one message of the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the shape of the model output.
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatResponse is the body returned by POST /chat/completions.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is a single completion candidate.
type Choice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// Usage tracks token consumption
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrorResponse is the error body returned on non-200 responses.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}
