// Package errors provides unified error handling for parsekit.
// It implements a structured error type with machine-readable codes,
// retryable detection, and a mapping from the numeric error codes
// returned by Parse-compatible backends.
package errors
