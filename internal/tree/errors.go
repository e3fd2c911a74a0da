package tree

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument is the sentinel for persisted skill tree documents
// that cannot be interpreted as a tree. Callers match it with errors.Is and
// decide whether to skip the document or abort the run.
var ErrMalformedDocument = errors.New("malformed skill tree document")

// MalformedDocumentError wraps ErrMalformedDocument with detail about the
// offending field.
type MalformedDocumentError struct {
	Field   string
	Message string
	Cause   error
}

func (e *MalformedDocumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed skill tree document: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("malformed skill tree document: %s", e.Message)
}

func (e *MalformedDocumentError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrMalformedDocument
}

// Is lets errors.Is(err, ErrMalformedDocument) succeed even when a Cause is set.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}
