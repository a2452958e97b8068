// Package transcription defines the transcription provider interface and
// common types for interacting with speech-to-text backends.
package transcription

import "context"

// Provider is the interface that transcription backends must implement.
type Provider interface {
	// Name returns the provider name for logs and errors.
	Name() string

	// Transcribe sends audio for transcription and returns the result.
	Transcribe(ctx context.Context, req Request) (*Response, error)
}
