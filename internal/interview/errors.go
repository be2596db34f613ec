package interview

import (
	"fmt"
	"strings"
)

// FlowName identifies the voice-assistant generation flow in errors and logs.
const FlowName = "vapi-generate"

// ErrInvalidBody indicates the request body, or the tool-call arguments nested
// in it, could not be decoded.
type ErrInvalidBody struct {
	Reason string
	Cause  error
}

func (e *ErrInvalidBody) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid request body: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid request body: %s", e.Reason)
}

func (e *ErrInvalidBody) Unwrap() error {
	return e.Cause
}

// ErrMissingFields indicates one or more required parameters were absent.
type ErrMissingFields struct {
	Flow   string
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Flow, strings.Join(e.Fields, ", "))
}

// ErrAuthLookupFailed indicates the session lookup itself failed, as opposed
// to finding no user.
type ErrAuthLookupFailed struct {
	Cause error
}

func (e *ErrAuthLookupFailed) Error() string {
	return fmt.Sprintf("authentication lookup failed: %v", e.Cause)
}

func (e *ErrAuthLookupFailed) Unwrap() error {
	return e.Cause
}

// ErrGenerationParse indicates the generated text was not a JSON array of strings.
type ErrGenerationParse struct {
	Reason string
	Cause  error
}

func (e *ErrGenerationParse) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse generated questions: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("failed to parse generated questions: %s", e.Reason)
}

func (e *ErrGenerationParse) Unwrap() error {
	return e.Cause
}
