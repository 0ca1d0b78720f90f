// Package errors defines glitchtop's structured error type and the mapping
// from errors to the final status line and process exit code.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig  = "CONFIG"
	ErrMetrics = "METRICS"
	ErrDisplay = "DISPLAY"
	ErrHalt    = "HALT"
)

// HaltMessage is printed when the user stops the dashboard.
const HaltMessage = "SYSTEM HALTED BY USER"

// Error is a coded error with an optional cause and fix hint. Metrics
// errors also carry the domain (cpu, gpu, ...) whose probe failed.
//
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed>
//
//	  <How to fix it>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Domain     string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// ProbeFailed wraps a metric probe error for one domain.
func ProbeFailed(domain string, err error) *Error {
	return &Error{
		Code:    ErrMetrics,
		Message: domain + " probe failed",
		Domain:  domain,
		Cause:   err,
	}
}

// NewUserHalt creates the error returned when the user stops the dashboard.
func NewUserHalt() *Error {
	return &Error{Code: ErrHalt, Message: HaltMessage}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	var gtErr *Error
	return errors.As(err, &gtErr) && gtErr.Code == code
}

// IsUserHalt reports whether err represents a user-requested stop.
func IsUserHalt(err error) bool {
	return IsCode(err, ErrHalt)
}

// DomainOf returns the metric domain recorded on err, or "".
func DomainOf(err error) string {
	var gtErr *Error
	if errors.As(err, &gtErr) {
		return gtErr.Domain
	}
	return ""
}

// Status is the one-line summary printed when the program ends with err.
func Status(err error) string {
	switch {
	case err == nil:
		return ""
	case IsUserHalt(err):
		return HaltMessage
	}
	var gtErr *Error
	if errors.As(err, &gtErr) {
		return "CRITICAL ERROR: " + gtErr.Message
	}
	return "CRITICAL ERROR: " + err.Error()
}

// ExitCode is 0 for success and user halts, 1 for anything else.
func ExitCode(err error) int {
	if err == nil || IsUserHalt(err) {
		return 0
	}
	return 1
}
