// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package validate implements the policy-driven validation engine that every
entity mutation routes through.

# Architecture

An [Engine] binds a flag registry to an optional language-validity oracle.
Entities never consult flags directly — they hand raw candidate values to the
engine and store whatever normalized value comes back. This keeps the rule
pipeline in exactly one place and guarantees no entity is ever left holding a
value that skipped a rule.

# Rule order

The pipeline order is fixed and observable: stripping runs before emptiness
and validity checks, so whitespace-only input counts as empty when the strip
flag is on, and as literal non-empty whitespace when it is off.
*/
package validate

import (
	"log/slog"
	"strings"

	"github.com/taibuivan/langbind/bcp47"
	"github.com/taibuivan/langbind/flags"
	"github.com/taibuivan/langbind/langerr"
)

// Engine applies the flag-controlled validation and normalization rules.
//
// # Concurrency
//
// Engine itself is stateless; its safety under concurrent use is that of the
// registry it consults.
type Engine struct {
	reg     *flags.Registry
	checker bcp47.Checker
	logger  *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithChecker installs a language-validity oracle. Passing nil models an
// absent oracle.
func WithChecker(checker bcp47.Checker) Option {
	return func(e *Engine) { e.checker = checker }
}

// WithLogger sets the logger used when validation degrades (oracle missing
// while VALID_LANG is active but ENFORCE_EXTRA_DEPEND is not).
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an Engine over the given registry. Unless overridden by
// [WithChecker], the standard BCP 47 oracle is installed.
func New(reg *flags.Registry, opts ...Option) *Engine {
	e := &Engine{
		reg:     reg,
		checker: bcp47.Default(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default returns an Engine over the process-wide default registry and the
// standard oracle.
func Default() *Engine { return New(flags.Default()) }

// Flags exposes the registry the engine consults, so entities can read
// rendering policy from the same source as validation policy.
func (e *Engine) Flags() *flags.Registry { return e.reg }

// flag reads one flag, treating registry errors as impossible for the
// well-known names used internally.
func (e *Engine) flag(ns flags.Namespace, name flags.Name) bool {
	v, err := e.reg.Get(ns, name)
	if err != nil {
		return false
	}
	return v
}

// Text validates and normalizes candidate text for the given namespace.
//
// Rules, in order: strip (STRIP_TEXT), then required-non-empty (DEFINED_TEXT).
// The returned string is the value the caller must store.
func (e *Engine) Text(ns flags.Namespace, raw string) (string, error) {
	text := raw
	if e.flag(ns, flags.StripText) {
		text = strings.TrimSpace(text)
	}
	if e.flag(ns, flags.DefinedText) && text == "" {
		return "", langerr.Value("text", "text must not be empty")
	}
	return text, nil
}

// Language validates and normalizes a candidate language tag for the given
// namespace.
//
// Rules, in order: strip (STRIP_LANG), required-non-empty (DEFINED_LANG),
// case-fold (LOWERCASE_LANG), then oracle validity (VALID_LANG). An empty tag
// means "language unspecified" and is never sent to the oracle.
func (e *Engine) Language(ns flags.Namespace, raw string) (string, error) {
	lang := raw
	if e.flag(ns, flags.StripLang) {
		lang = strings.TrimSpace(lang)
	}
	if e.flag(ns, flags.DefinedLang) && lang == "" {
		return "", langerr.Value("lang", "language must not be empty")
	}
	if e.flag(ns, flags.LowercaseLang) {
		lang = bcp47.Fold(lang)
	}
	if e.flag(ns, flags.ValidLang) && lang != "" {
		if e.checker == nil {
			if e.flag(ns, flags.EnforceExtraDepend) {
				return "", langerr.Value("lang",
					"language validation requested but no validity oracle is installed")
			}
			e.logger.Warn("skipping language validation, no validity oracle installed",
				slog.String("namespace", string(ns)),
				slog.String("lang", lang),
			)
			return lang, nil
		}
		if !e.checker.IsValid(lang) {
			return "", langerr.Valuef("lang", "invalid language tag %q", lang)
		}
	}
	return lang, nil
}

