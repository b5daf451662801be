package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies remote failures.
type ErrorKind int

const (
	// KindUnavailable means the request never produced a response
	// (network/transport failure, timeout).
	KindUnavailable ErrorKind = iota
	// KindRejected means the service answered with a non-success status.
	KindRejected
)

// RemoteError wraps a failed remote operation with its classification.
type RemoteError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int // set for KindRejected
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case KindRejected:
		if e.Message != "" {
			return fmt.Sprintf("%s: service returned %d: %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s: service returned %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: service unreachable: %v", e.Op, e.Err)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ValidationError is a local reject: the request never reaches the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsUnavailable reports whether err is a transport-level remote failure.
func IsUnavailable(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == KindUnavailable
}

// IsRejected reports whether err is a non-success service response.
func IsRejected(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == KindRejected
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
