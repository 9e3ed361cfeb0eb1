package completion_test

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/extraction"
	"taskboard/internal/extraction/completion"
	"taskboard/pkg/llmprovider"
)

type fakeGenerator struct {
	got  *llmprovider.Request
	resp *llmprovider.Response
	err  error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestComplete(t *testing.T) {
	gen := &fakeGenerator{resp: &llmprovider.Response{Content: `{"tasks":[]}`}}
	p := completion.New(gen, completion.Options{Temperature: 0.2, MaxTokens: 512})

	got, err := p.Complete(context.Background(), extraction.Prompt{System: "sys", User: "buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"tasks":[]}` {
		t.Errorf("Complete() = %q", got)
	}

	req := gen.got
	if req.SystemInstruction != "sys" || len(req.Messages) != 1 || req.Messages[0].Content != "buy milk" {
		t.Errorf("unexpected request: %+v", req)
	}
	if !req.JSONMode || req.Temperature != 0.2 || req.MaxTokens != 512 {
		t.Errorf("generation options not forwarded: %+v", req)
	}
}

func TestComplete_Error(t *testing.T) {
	cause := errors.New("all providers failed")
	p := completion.New(&fakeGenerator{err: cause}, completion.Options{})

	if _, err := p.Complete(context.Background(), extraction.Prompt{User: "x"}); !errors.Is(err, cause) {
		t.Errorf("expected cause, got %v", err)
	}
}

func TestComplete_WithManager(t *testing.T) {
	// The production wiring: a Manager satisfies Generator.
	var _ completion.Generator = (*llmprovider.Manager)(nil)
}
