// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package flags implements the policy switchboard that governs every mutation of
the tagged-text entities.

Each flag is a boolean switch identified by a (namespace, name) pair. The
Global namespace fans out: setting a global flag atomically sets the same-named
flag in the Text, TextSet and TextMap namespaces. Entity namespaces are
independent of each other — resetting one never perturbs the others.

Architecture:

  - Registry: a mutex-guarded value holding all flag states. Construct one per
    policy domain and pass it to the validation engine, or use [Default] for
    process-wide behavior.
  - FromEnv: optional bootstrap of a registry from LANGBIND_* environment
    variables, following the twelve-factor configuration style.
  - Zero Hidden State: apart from the opt-in [Default] registry, all state is
    owned by the caller.
*/
package flags

// Namespace scopes a flag to one entity kind, or to all of them at once.
type Namespace string

const (
	// Global addresses every entity namespace at once. Setting a global flag
	// cascades; reading one returns the last value set globally.
	Global Namespace = "global"
	// Text scopes a flag to single language-tagged strings.
	Text Namespace = "text"
	// TextSet scopes a flag to same-language collections.
	TextSet Namespace = "textset"
	// TextMap scopes a flag to multi-language collections.
	TextMap Namespace = "textmap"
)

// entityNamespaces are the cascade targets of the Global namespace.
var entityNamespaces = []Namespace{Text, TextSet, TextMap}

// Namespaces returns every known namespace, Global first.
func Namespaces() []Namespace {
	return []Namespace{Global, Text, TextSet, TextMap}
}

// Name identifies a policy switch within a namespace.
type Name string

const (
	// DefinedLang requires a non-empty language tag.
	DefinedLang Name = "DEFINED_LANG"
	// DefinedText requires non-empty text.
	DefinedText Name = "DEFINED_TEXT"
	// EnforceExtraDepend makes a missing language-validity oracle fatal when
	// ValidLang is active; when false, validation silently degrades.
	EnforceExtraDepend Name = "ENFORCE_EXTRA_DEPEND"
	// LowercaseLang case-folds language tags during validation.
	LowercaseLang Name = "LOWERCASE_LANG"
	// PrintWithLang appends "@<lang>" to rendered output when the tag is
	// non-empty.
	PrintWithLang Name = "PRINT_WITH_LANG"
	// PrintWithQuotes wraps rendered text in double quotes.
	PrintWithQuotes Name = "PRINT_WITH_QUOTES"
	// StripLang trims surrounding whitespace from language tags before any
	// other check.
	StripLang Name = "STRIP_LANG"
	// StripText trims surrounding whitespace from text before any other check.
	StripText Name = "STRIP_TEXT"
	// ValidLang checks language tags against the validity oracle.
	ValidLang Name = "VALID_LANG"
)

// Names returns every known flag name in declaration order.
func Names() []Name {
	return []Name{
		DefinedLang,
		DefinedText,
		EnforceExtraDepend,
		LowercaseLang,
		PrintWithLang,
		PrintWithQuotes,
		StripLang,
		StripText,
		ValidLang,
	}
}

// defaults holds the per-name default value, identical across namespaces.
//
// PrintWithLang and PrintWithQuotes default to true so that the zero-policy
// canonical rendering of an entity is `"text"@lang`.
var defaults = map[Name]bool{
	DefinedLang:        false,
	DefinedText:        true,
	EnforceExtraDepend: false,
	LowercaseLang:      false,
	PrintWithLang:      true,
	PrintWithQuotes:    true,
	StripLang:          false,
	StripText:          false,
	ValidLang:          false,
}

// DefaultOf returns the default value of the named flag.
// Unknown names report false.
func DefaultOf(name Name) bool { return defaults[name] }

// knownNamespace reports whether ns is one of the four namespaces.
func knownNamespace(ns Namespace) bool {
	switch ns {
	case Global, Text, TextSet, TextMap:
		return true
	}
	return false
}

// knownName reports whether name is a recognized flag identifier.
func knownName(name Name) bool {
	_, ok := defaults[name]
	return ok
}
