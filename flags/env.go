// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flags

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envFlags maps LANGBIND_* environment variables onto the global namespace.
//
// Absent variables fall back to the library defaults, so an empty environment
// yields the same registry as [New].
type envFlags struct {
	DefinedLang        bool `env:"LANGBIND_DEFINED_LANG"         envDefault:"false"`
	DefinedText        bool `env:"LANGBIND_DEFINED_TEXT"         envDefault:"true"`
	EnforceExtraDepend bool `env:"LANGBIND_ENFORCE_EXTRA_DEPEND" envDefault:"false"`
	LowercaseLang      bool `env:"LANGBIND_LOWERCASE_LANG"       envDefault:"false"`
	PrintWithLang      bool `env:"LANGBIND_PRINT_WITH_LANG"      envDefault:"true"`
	PrintWithQuotes    bool `env:"LANGBIND_PRINT_WITH_QUOTES"    envDefault:"true"`
	StripLang          bool `env:"LANGBIND_STRIP_LANG"           envDefault:"false"`
	StripText          bool `env:"LANGBIND_STRIP_TEXT"           envDefault:"false"`
	ValidLang          bool `env:"LANGBIND_VALID_LANG"           envDefault:"false"`
}

// FromEnv creates a Registry seeded from LANGBIND_* environment variables.
//
// Each variable sets the corresponding Global flag, so values cascade into
// all three entity namespaces.
func FromEnv(opts ...Option) (*Registry, error) {
	cfg := envFlags{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("flags: failed to parse environment variables: %w", err)
	}

	r := New(opts...)
	seed := map[Name]bool{
		DefinedLang:        cfg.DefinedLang,
		DefinedText:        cfg.DefinedText,
		EnforceExtraDepend: cfg.EnforceExtraDepend,
		LowercaseLang:      cfg.LowercaseLang,
		PrintWithLang:      cfg.PrintWithLang,
		PrintWithQuotes:    cfg.PrintWithQuotes,
		StripLang:          cfg.StripLang,
		StripText:          cfg.StripText,
		ValidLang:          cfg.ValidLang,
	}
	for name, value := range seed {
		if err := r.Set(Global, name, value); err != nil {
			return nil, err
		}
	}
	return r, nil
}
