// Package errors provides the normalized error shapes surfaced by the API client
// and recorded by the state containers.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Error Codes
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRequestFailed      ErrorCode = "REQUEST_FAILED"
	ErrCodeNetworkError       ErrorCode = "NETWORK_ERROR"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeDecodeFailed       ErrorCode = "DECODE_FAILED"
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeNotAuthenticated   ErrorCode = "NOT_AUTHENTICATED"
)

// GenericMessage is shown when neither the server nor the transport gave anything usable.
const GenericMessage = "Something went wrong. Please try again."

// StandardError represents a local failure (session store, decoding, config).
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// ==========================
// 2. Request Errors
// ==========================

// Kind tags the variant held by a RequestError.
type Kind string

const (
	KindMessage     Kind = "message"
	KindFieldErrors Kind = "fieldErrors"
)

// FieldError is a single validation failure tied to a field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// RequestError is the tagged union returned for every failed API call. Exactly one
// of Text (KindMessage) or Fields (KindFieldErrors) is meaningful.
type RequestError struct {
	Kind   Kind         `json:"kind"`
	Code   ErrorCode    `json:"code"`
	Status int          `json:"status,omitempty"`
	Text   string       `json:"text,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
	cause  error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindFieldErrors:
		return fmt.Sprintf("RequestError[%s]: %s", e.Code, joinFields(e.Fields))
	default:
		return fmt.Sprintf("RequestError[%s]: %s", e.Code, e.Text)
	}
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

// ==========================
// 3. Constructors
// ==========================

// NewMessageError builds a message-kind error for an HTTP status.
func NewMessageError(status int, text string) *RequestError {
	if strings.TrimSpace(text) == "" {
		text = GenericMessage
	}
	return &RequestError{
		Kind:   KindMessage,
		Code:   codeForStatus(status),
		Status: status,
		Text:   text,
	}
}

// NewFieldErrors builds a fieldErrors-kind error.
func NewFieldErrors(status int, fields []FieldError) *RequestError {
	return &RequestError{
		Kind:   KindFieldErrors,
		Code:   codeForStatus(status),
		Status: status,
		Fields: fields,
	}
}

// NewValidationError is the client-side form check failure; no request was sent.
func NewValidationError(fields []FieldError) *RequestError {
	return &RequestError{
		Kind:   KindFieldErrors,
		Code:   ErrCodeValidationFailed,
		Fields: fields,
	}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *RequestError {
	return &RequestError{
		Kind:  KindMessage,
		Code:  ErrCodeNetworkError,
		Text:  GenericMessage,
		cause: err,
	}
}

// NewDecodeError reports an unreadable 2xx body.
func NewDecodeError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecodeFailed,
		Message:   "Unexpected response from server",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewSessionStoreError reports a persisted key/value store failure.
func NewSessionStoreError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session storage unavailable",
		Details:   fmt.Sprintf("op: %s, error: %v", op, err),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewNotAuthenticatedError is returned by actions that need a signed-in user.
func NewNotAuthenticatedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNotAuthenticated,
		Message:   "Please sign in to continue",
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// Message renders err as the single human-readable line a container records.
// It never returns an empty string for a non-nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var reqErr *RequestError
	if stderrors.As(err, &reqErr) {
		if reqErr.Kind == KindFieldErrors && len(reqErr.Fields) > 0 {
			return joinFields(reqErr.Fields)
		}
		if reqErr.Text != "" {
			return reqErr.Text
		}
		return GenericMessage
	}

	var stdErr *StandardError
	if stderrors.As(err, &stdErr) && stdErr.Message != "" {
		return stdErr.Message
	}

	if stderrors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	return GenericMessage
}

// Fields returns the field-level errors carried by err, if any.
func Fields(err error) []FieldError {
	var reqErr *RequestError
	if stderrors.As(err, &reqErr) && reqErr.Kind == KindFieldErrors {
		return reqErr.Fields
	}
	return nil
}

// IsUnauthorized reports a 401 from the server.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return stderrors.As(err, &reqErr) && reqErr.Status == http.StatusUnauthorized
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var reqErr *RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.Code == code
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return ErrCodeValidationFailed
	default:
		return ErrCodeRequestFailed
	}
}

func joinFields(fields []FieldError) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Path == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Path+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}
