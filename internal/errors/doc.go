// Package apperrors defines structured error types for the big-integer
// engine, allowing for a clear distinction between failure classes
// (division by zero, invalid modulus, parse failures, exhausted prime
// search) and for matching with errors.As at call sites.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf
// with %w. Context is added with WrapError so callers can still reach the
// typed root cause.
package apperrors
