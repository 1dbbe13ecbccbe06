// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package langerr defines the centralized error taxonomy for Langbind.

It provides a single rich error type shared by the flag registry, the
validation engine, the tagged-text entities, and the converter.

Architecture:

  - Error: A struct containing a machine-readable Code and a human-readable message.
  - Codes: TYPE_ERROR, VALUE_ERROR, NOT_FOUND, KIND_ERROR — the four failure
    classes any operation in this library can produce.
  - Helpers: Is/As-friendly extraction so callers can branch on the code
    without string-matching messages.

Every error returned by a public Langbind API is (or wraps) a [*Error], so the
data structures are guaranteed to remain in their last-valid state after any
failure — validation always happens before state is altered.
*/
package langerr

import (
	"errors"
	"fmt"
)

// # Error Codes

const (
	// CodeType marks a wrong-kind-of-value failure (e.g. a non-string where
	// text was required).
	CodeType = "TYPE_ERROR"
	// CodeValue marks a right-type, wrong-content failure (empty when
	// required non-empty, invalid language tag, mismatched operand language).
	CodeValue = "VALUE_ERROR"
	// CodeNotFound marks a keyed lookup or explicit removal targeting an
	// absent element or language key.
	CodeNotFound = "NOT_FOUND"
	// CodeKind marks an unrecognized flag or conversion-method identifier.
	CodeKind = "KIND_ERROR"
)

// Error is the canonical error type for Langbind.
//
// It carries a machine-readable code, a human-readable message, the field the
// failure relates to ("text" or "lang", when applicable), and an optional
// underlying cause.
type Error struct {
	// Code is a machine-readable error identifier (e.g. "VALUE_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"error"`
	// Field names the offending input, typically "text" or "lang".
	Field string `json:"field,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

// # Constructors

// Type creates a TYPE_ERROR for the named field.
//
// Example:
//
//	langerr.Type("text", "expected a string, got int")
func Type(field, message string) *Error {
	return &Error{Code: CodeType, Message: message, Field: field}
}

// Typef creates a TYPE_ERROR with a formatted message.
func Typef(field, format string, args ...any) *Error {
	return Type(field, fmt.Sprintf(format, args...))
}

// Value creates a VALUE_ERROR for the named field.
func Value(field, message string) *Error {
	return &Error{Code: CodeValue, Message: message, Field: field}
}

// Valuef creates a VALUE_ERROR with a formatted message.
func Valuef(field, format string, args ...any) *Error {
	return Value(field, fmt.Sprintf(format, args...))
}

// NotFound creates a NOT_FOUND error for a named element or key.
//
// Example:
//
//	langerr.NotFound(`language "en"`) // Returns `language "en" not found`
func NotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Message: what + " not found"}
}

// Kind creates a KIND_ERROR for an unrecognized identifier.
func Kind(message string) *Error {
	return &Error{Code: CodeKind, Message: message}
}

// Kindf creates a KIND_ERROR with a formatted message.
func Kindf(format string, args ...any) *Error {
	return Kind(fmt.Sprintf(format, args...))
}

// LangMismatch creates the VALUE_ERROR used whenever two operands carry
// different language tags. Comparison is case-insensitive, so this is only
// produced for genuinely different tags.
func LangMismatch(want, got string) *Error {
	return Valuef("lang", "language mismatch: expected %q, got %q", want, got)
}

// # Helpers

// As extracts the [*Error] from err's chain. It returns nil if not found.
func As(err error) *Error {
	var le *Error
	if errors.As(err, &le) {
		return le
	}
	return nil
}

// IsCode reports whether err (or any error in its chain) is a [*Error]
// carrying the given code.
func IsCode(err error, code string) bool {
	le := As(err)
	return le != nil && le.Code == code
}

// IsNotFound reports whether err is a NOT_FOUND failure.
func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }

// IsValue reports whether err is a VALUE_ERROR failure.
func IsValue(err error) bool { return IsCode(err, CodeValue) }
