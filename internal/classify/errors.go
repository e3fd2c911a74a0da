package classify

import "fmt"

// APICallError represents a failure calling the classifier model
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents classifier output that could not be interpreted as
// a skill record. Callers fall back to keyword extraction on this error;
// malformed output is never fed into the tree builder.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
