package utils

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFull     = errors.New("session is full")
	ErrNoJSONFound     = errors.New("no JSON value found in completion text")
)

// previewLimit bounds how much raw model output ends up in error messages
// and logs.
const previewLimit = 200

// Preview truncates raw model output for diagnostics. The cut backs up to
// a rune boundary so Chinese completion text is never split mid-character.
func Preview(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	cut := previewLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// RemoteServiceError is a non-2xx reply from a completion or image endpoint.
type RemoteServiceError struct {
	StatusCode int
	Body       string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service returned status %d: %s", e.StatusCode, Preview(e.Body))
}

// MalformedEnvelopeError is a 2xx reply missing the expected
// success/response envelope fields.
type MalformedEnvelopeError struct {
	Reason string
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed response envelope: %s", e.Reason)
}

// JSONParseError wraps a parse failure together with a bounded preview of
// the substring that failed to parse.
type JSONParseError struct {
	Preview string
	Err     error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON from completion: %v (text: %s)", e.Err, e.Preview)
}

func (e *JSONParseError) Unwrap() error { return e.Err }

// ShapeValidationError is parsed JSON that lacks required fields or has
// wrong types/lengths for the expected entity.
type ShapeValidationError struct {
	Entity string
	Reason string
}

func (e *ShapeValidationError) Error() string {
	return fmt.Sprintf("%s failed shape validation: %s", e.Entity, e.Reason)
}
