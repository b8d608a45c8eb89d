// Package clouderr defines the error taxonomy shared by all provider
// adapters. Adapters translate SDK failures into a CallError with one of
// five kinds; the fan-out controller retries the transient ones and records
// the rest as per-category error strings.
package clouderr

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a provider-call failure. The string values are the
// human-readable per-category error strings recorded in inventories.
type Kind string

const (
	KindAuth        Kind = "AuthError"
	KindRateLimited Kind = "RateLimited"
	KindTimeout     Kind = "Timeout"
	KindUnavailable Kind = "Unavailable"
	KindUnknown     Kind = "Unknown"
)

// Retryable reports whether a call failing with this kind may be retried.
// Auth and unknown failures are terminal.
func (k Kind) Retryable() bool {
	switch k {
	case KindRateLimited, KindTimeout, KindUnavailable:
		return true
	}
	return false
}

// CallError is a provider-call failure translated to the common taxonomy.
type CallError struct {
	Provider  string
	Operation string
	Kind      Kind
	cause     error
}

// NewCallError wraps a provider SDK error with its classified kind.
func NewCallError(provider, operation string, kind Kind, cause error) *CallError {
	return &CallError{
		Provider:  provider,
		Operation: operation,
		Kind:      kind,
		cause:     cause,
	}
}

func (e *CallError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Provider, e.Operation, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Operation, e.Kind)
}

func (e *CallError) Unwrap() error {
	return e.cause
}

// KindOf extracts the taxonomy kind from an error chain. Context expiry maps
// to Timeout; anything unclassified is Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTimeout
	}
	return KindUnknown
}

// Retryable reports whether the error classifies as a transient failure.
func Retryable(err error) bool {
	return KindOf(err).Retryable()
}

// InvalidCredentialError is the single fatal error of the engine: the
// client's credential blob is missing a required field. It is raised during
// resolution, before any network call.
type InvalidCredentialError struct {
	Provider string
	Field    string
}

func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("invalid %s credential shape: missing %s", e.Provider, e.Field)
}

// IsInvalidCredential reports whether the error chain contains an
// InvalidCredentialError.
func IsInvalidCredential(err error) bool {
	var invalid *InvalidCredentialError
	return errors.As(err, &invalid)
}
