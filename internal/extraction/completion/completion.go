package completion

import (
	"context"

	"taskboard/internal/extraction"
	"taskboard/pkg/llmprovider"
)

// Generator is the part of llmprovider.Manager the adapter needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options are the generation settings sent with every extraction call.
type Options struct {
	Temperature float64
	MaxTokens   int
}

type provider struct {
	gen  Generator
	opts Options
}

// New adapts a Generator to extraction.CompletionProvider. Requests are made
// in JSON mode so the reply is a single JSON object.
func New(gen Generator, opts Options) extraction.CompletionProvider {
	return &provider{gen: gen, opts: opts}
}

func (p *provider) Complete(ctx context.Context, prompt extraction.Prompt) (string, error) {
	resp, err := p.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: prompt.System,
		Messages:          []llmprovider.Message{{Role: "user", Content: prompt.User}},
		Temperature:       p.opts.Temperature,
		MaxTokens:         p.opts.MaxTokens,
		JSONMode:          true,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
