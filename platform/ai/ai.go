// Package ai defines the backend-neutral contract for text generation providers.
// This is part of the platform layer and contains no business logic.
package ai

import "context"

// Request is a single prompt sent to a generation backend.
type Request struct {
	// System is the instruction message placed before the prompt.
	System string
	// Prompt is the user message.
	Prompt string
	// JSON asks the backend to constrain its output to a JSON object.
	JSON bool
}

// Generator produces raw text for a prompt. Implementations must honor ctx
// cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
