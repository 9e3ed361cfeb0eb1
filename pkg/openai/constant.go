package openai

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// ResponseFormatJSONObject constrains the reply to a single JSON object.
	ResponseFormatJSONObject = "json_object"
)

// Vendor holds the endpoint defaults of an OpenAI-compatible API.
type Vendor struct {
	BaseURL      string
	DefaultModel string
}

// Vendors lists the OpenAI-compatible services known by name.
var Vendors = map[string]Vendor{
	"groq": {
		BaseURL:      "https://api.groq.com/openai/v1",
		DefaultModel: "llama3-70b-8192",
	},
	"openai": {
		BaseURL:      "https://api.openai.com/v1",
		DefaultModel: "gpt-4o-mini",
	},
	"deepseek": {
		BaseURL:      "https://api.deepseek.com/v1",
		DefaultModel: "deepseek-chat",
	},
	"qwen": {
		BaseURL:      "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		DefaultModel: "qwen-plus",
	},
}
