package ai

import (
	"context"
	"fmt"
)

// Summarizer is the interface every provider adapter implements.
// Implement this interface to add new AI providers to the chain.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

// AdapterError is the uniform failure type returned by provider adapters.
// Every remote failure (missing credential, transport error, bad status,
// malformed or empty response) is converted into one at the adapter
// boundary; nothing from the remote call escapes uncaught.
type AdapterError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *AdapterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

func (e *AdapterError) Unwrap() error { return e.Err }
