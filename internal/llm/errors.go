// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse marks a model answer that does not follow the
	// assessment contract. Callers degrade to neutral values.
	ErrMalformedResponse = errors.New("malformed llm response")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty llm response")

	ErrRequestFailed = errors.New("llm request failed")
)

// ParseError describes why an answer was rejected.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedResponse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Reason)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}
