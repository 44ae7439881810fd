package domain

import (
	"errors"
	"fmt"
)

// ValidationError is a local precondition failure, raised before any outbound call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrEmptyContent is returned when a diary entry has no content.
var ErrEmptyContent = &ValidationError{Message: "Empty content"}

// UpstreamError reports a failed call to an external service. StatusCode is
// zero for transport failures. When Err is set it already describes the
// failure, status included, and is printed as is.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s API Error: %v", e.Service, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s API Error: %d", e.Service, e.StatusCode)
	default:
		return fmt.Sprintf("%s API Error", e.Service)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failed write to the interaction log.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrMissingUserText is wrapped in a StorageError when a record has no user text.
var ErrMissingUserText = errors.New("user text is required")
