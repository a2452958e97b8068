// Package analysis defines the structured answer-evaluation provider
// interface, the evaluation data model, and prompt construction.
package analysis

import "context"

// Provider is the interface that answer-analysis backends must implement.
type Provider interface {
	// Name returns the provider name for logs and errors.
	Name() string

	// Evaluate returns the structured evaluation of a transcribed answer.
	Evaluate(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error)

	// GenerateQuestion returns an interview question for the given job role.
	GenerateQuestion(ctx context.Context, role string) (string, error)
}
