// Copyright 2025 The hashctx Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engines

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of context error.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeAlgorithmInit indicates a context could not be constructed
	// for the requested algorithm. Nothing is allocated when this is
	// returned.
	ErrTypeAlgorithmInit

	// ErrTypeInvalidState indicates an operation was attempted out of
	// sequence, such as an update after finalize or any use after destroy.
	ErrTypeInvalidState

	// ErrTypeInvalidHandle indicates a handle that does not resolve to a
	// live context.
	ErrTypeInvalidHandle
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeAlgorithmInit:
		return "AlgorithmInitError"
	case ErrTypeInvalidState:
		return "InvalidStateError"
	case ErrTypeInvalidHandle:
		return "InvalidHandleError"
	default:
		return "UnknownError"
	}
}

// ContextError is a structured error type for digest context failures.
//
// It carries the error category for programmatic handling, the algorithm
// involved when known, a human-readable message, and the underlying cause.
//
// Example usage:
//
//	if err != nil {
//	    var ctxErr *engines.ContextError
//	    if errors.As(err, &ctxErr) {
//	        log.Printf("digest failed: type=%s, algorithm=%s, msg=%s",
//	                   ctxErr.Type, ctxErr.Algorithm, ctxErr.Message)
//	    }
//	}
type ContextError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType

	// Algorithm is the algorithm name related to the error (optional).
	Algorithm string

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ContextError) Error() string {
	if e.Algorithm != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s (algorithm: %s): %v", e.Type, e.Message, e.Algorithm, e.Cause)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s: %s (algorithm: %s)", e.Type, e.Message, e.Algorithm)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *ContextError) Unwrap() error {
	return e.Cause
}

// NewContextError creates a new context error.
func NewContextError(errType ErrorType, message string, cause error) *ContextError {
	return &ContextError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewContextErrorWithAlgorithm creates a new context error tagged with an
// algorithm name.
func NewContextErrorWithAlgorithm(errType ErrorType, algorithm, message string, cause error) *ContextError {
	return &ContextError{
		Type:      errType,
		Algorithm: algorithm,
		Message:   message,
		Cause:     cause,
	}
}

// IsType checks if an error is a ContextError of a specific type,
// unwrapping as needed.
//
// Example:
//
//	if engines.IsType(err, engines.ErrTypeInvalidState) {
//	    // Handle out-of-sequence operation
//	}
func IsType(err error, errType ErrorType) bool {
	var ctxErr *ContextError
	if errors.As(err, &ctxErr) {
		return ctxErr.Type == errType
	}
	return false
}

// IsAlgorithmInit reports whether err is an algorithm construction failure.
func IsAlgorithmInit(err error) bool {
	return IsType(err, ErrTypeAlgorithmInit)
}

// IsInvalidState reports whether err is an out-of-sequence operation error.
func IsInvalidState(err error) bool {
	return IsType(err, ErrTypeInvalidState)
}

// IsInvalidHandle reports whether err is an unresolvable handle error.
func IsInvalidHandle(err error) bool {
	return IsType(err, ErrTypeInvalidHandle)
}
