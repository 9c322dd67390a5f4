package parsing

import "fmt"

// ModelCallError represents a transport, auth, or quota failure reaching the
// extraction model.
type ModelCallError struct {
	Message string
	Cause   error
}

func (e *ModelCallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model call failed: %s", e.Message)
}

func (e *ModelCallError) Unwrap() error {
	return e.Cause
}

// UnparseableResponseError indicates the model returned text containing no
// recoverable JSON object. Excerpt carries a bounded slice of the raw response
// for diagnostics.
type UnparseableResponseError struct {
	Excerpt string
	Cause   error
}

func (e *UnparseableResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no recoverable JSON in model response: %v (excerpt: %q)", e.Cause, e.Excerpt)
	}
	return fmt.Sprintf("no recoverable JSON in model response (excerpt: %q)", e.Excerpt)
}

func (e *UnparseableResponseError) Unwrap() error {
	return e.Cause
}
