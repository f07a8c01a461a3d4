// Package ai is the transport to the body agent. The agent is an opaque
// remote model: one prompt string in, free-form text out. Everything that
// interprets the text lives in the ingest package.
package ai

import "context"

// Provider generates a complete reply for a single prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Streamer is implemented by providers that deliver the reply as a token
// stream. Callers that only need the final text use Collect; the ingestion
// pipeline behaves identically either way.
type Streamer interface {
	GenerateStream(ctx context.Context, prompt string) (<-chan string, error)
}

// Collect drains a token stream into the complete reply text.
func Collect(chunks <-chan string) string {
	var text string
	for chunk := range chunks {
		text += chunk
	}
	return text
}

// Reply fetches the full reply from provider, preferring the streaming
// path when available.
func Reply(ctx context.Context, provider Provider, prompt string) (string, error) {
	if streamer, ok := provider.(Streamer); ok {
		chunks, err := streamer.GenerateStream(ctx, prompt)
		if err != nil {
			return "", err
		}
		return Collect(chunks), nil
	}
	return provider.Generate(ctx, prompt)
}
