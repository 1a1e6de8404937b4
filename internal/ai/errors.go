package ai

import "fmt"

// UpstreamError means the text service was unreachable or returned a failure.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UnparseableError means the text service answered, but the answer was not a
// JSON array of drafts. Raw is kept so a human can inspect and fix it.
type UnparseableError struct {
	Raw string
}

func (e *UnparseableError) Error() string {
	return "generated text was not a valid question list"
}
