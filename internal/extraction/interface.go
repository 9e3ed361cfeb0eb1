package extraction

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract turns free-form text into validated tasks.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}

// CompletionProvider is the text-completion service behind the pipeline.
// It receives the system instruction and the user text and returns the raw
// model output.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
