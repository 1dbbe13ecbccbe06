// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bcp47 adapts golang.org/x/text into the language-tag facilities the
validation engine needs: a validity oracle and a Unicode case-fold.

The oracle is deliberately narrow — a single predicate — so alternative
implementations (an allow-list, a remote registry client) can be swapped in
without touching the engine. A nil [Checker] models "oracle not installed";
how the engine reacts to that is policy-driven, not decided here.
*/
package bcp47

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Checker judges whether a string is a well-formed, registered language tag.
type Checker interface {
	// IsValid reports whether tag is acceptable as a language identifier.
	IsValid(tag string) bool
}

// CheckerFunc adapts a plain function into a [Checker].
type CheckerFunc func(tag string) bool

// IsValid implements [Checker].
func (f CheckerFunc) IsValid(tag string) bool { return f(tag) }

// xtextChecker validates tags through BCP 47 parsing.
type xtextChecker struct{}

// IsValid reports whether tag parses as a BCP 47 language tag.
// The empty tag is not valid; emptiness policy is handled upstream.
func (xtextChecker) IsValid(tag string) bool {
	if tag == "" {
		return false
	}
	_, err := language.Parse(tag)
	return err == nil
}

// Default returns the standard oracle backed by [language.Parse].
func Default() Checker { return xtextChecker{} }

// Tag parses a language tag, falling back to [language.Und] for empty or
// unparseable input. Used to pick locale-aware casing rules.
func Tag(tag string) language.Tag {
	if tag == "" {
		return language.Und
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.Und
	}
	return parsed
}

// Fold case-folds a language tag for case-insensitive comparison.
//
// Folding is stronger than lowercasing for some scripts, which is why tag
// equality throughout the library goes through this function rather than
// [strings.ToLower].
func Fold(tag string) string {
	return cases.Fold().String(tag)
}

// EqualFold reports whether two tags are equal under case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
