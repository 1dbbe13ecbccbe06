// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package langtext

import (
	"github.com/taibuivan/langbind/flags"
)

// DefaultSeparator sits between the rendered text and its language tag.
const DefaultSeparator = "@"

// renderConfig holds the resolved rendering options for one call.
type renderConfig struct {
	quotes   bool
	withLang bool
	sep      string
}

// RenderOption overrides one policy-controlled rendering default.
type RenderOption func(*renderConfig)

// WithQuotes controls whether the text is wrapped in double quotes.
func WithQuotes(enabled bool) RenderOption {
	return func(c *renderConfig) { c.quotes = enabled }
}

// WithLang controls whether "<separator><lang>" is appended when the
// language tag is non-empty.
func WithLang(enabled bool) RenderOption {
	return func(c *renderConfig) { c.withLang = enabled }
}

// WithSeparator replaces the separator between text and language tag.
func WithSeparator(sep string) RenderOption {
	return func(c *renderConfig) { c.sep = sep }
}

// policyConfig seeds rendering defaults from the PRINT_* flags of the
// entity's namespace, then applies caller overrides.
func policyConfig(reg *flags.Registry, ns flags.Namespace, opts []RenderOption) renderConfig {
	quotes, _ := reg.Get(ns, flags.PrintWithQuotes)
	withLang, _ := reg.Get(ns, flags.PrintWithLang)

	cfg := renderConfig{quotes: quotes, withLang: withLang, sep: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// renderOne produces the canonical textual shape for a (text, language) pair:
// `"<text>"<separator><language>`, with the suffix omitted entirely for an
// empty language tag.
func renderOne(text, lang string, cfg renderConfig) string {
	out := text
	if cfg.quotes {
		out = `"` + out + `"`
	}
	if cfg.withLang && lang != "" {
		out += cfg.sep + lang
	}
	return out
}
