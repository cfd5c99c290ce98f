package ports

import "context"

// Summarizer turns a plain-text shipment rendering into short prose.
type Summarizer interface {
	// Summarize returns prose for the given prompt text.
	Summarize(ctx context.Context, prompt string) (string, error)
}
