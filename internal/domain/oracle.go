package domain

import "context"

// Oracle is the generative-text model used for quiz generation and analysis.
// Implementations make exactly one model call per invocation and never retry.
type Oracle interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
