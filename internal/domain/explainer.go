package domain

import "context"

// ExplanationProvider produces an explanation for a question when none is stored.
type ExplanationProvider interface {
	// Explain returns a short explanation of why correctAnswer answers questionText.
	Explain(ctx context.Context, questionText string, correctAnswer string) (string, error)
}
