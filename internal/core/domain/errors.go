package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNotModified indicates the caller's cache token still matches the
	// remote root page, so no preparation was performed.
	ErrNotModified = errors.New("not modified")

	// ErrOutputDirInUse indicates a publish destination holds content that
	// was not written by a previous preparation.
	ErrOutputDirInUse = errors.New("output directory holds unrelated content")

	// Configuration Errors.

	// ErrBaseURLRequired indicates no remote base URL is configured.
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrUnsupportedAuthType indicates an unknown authentication type.
	ErrUnsupportedAuthType = errors.New("unsupported auth type")

	// ErrCredentialsMissing indicates the selected auth type lacks a credential.
	ErrCredentialsMissing = errors.New("credentials missing")
)

// InputError reports a malformed or unrecognised annotation or URL.
// It is raised before any I/O is attempted.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError reports a remote page that does not exist.
// Query names the page id or space/title pair that was requested.
type NotFoundError struct {
	Kind  string
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Query)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsInputError checks if the error is an input error.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
