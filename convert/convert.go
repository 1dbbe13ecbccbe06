// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides the stateless transformation functions between raw
strings and the three tagged-text tiers.

Functions are partitioned by source→target pair, singular and plural. None of
them bypass the entities' public mutation contracts: every value that enters
an entity goes through the same validation as a direct call would.

# Conversion methods

Two methods exist for string→Text: "manual" (the caller supplies the language
tag) and "parse" (the raw string is split on the last occurrence of a
separator; when the separator is absent the whole string becomes the text and
the language stays empty).

# Merge casing rule

All N-to-1 merges reconcile language-tag casing per case-fold group: if every
input uses one consistent casing it is preserved verbatim; any variance
selects the case-folded form. So merging sets tagged "en" and "EN" yields key
"en", while merging two sets both tagged "EN" keeps "EN".
*/
package convert

import (
	"slices"
	"strings"

	"github.com/taibuivan/langbind/bcp47"
	"github.com/taibuivan/langbind/langerr"
	"github.com/taibuivan/langbind/langtext"
	"github.com/taibuivan/langbind/validate"
)

// Method selects how a raw string is turned into a tagged Text.
type Method string

const (
	// MethodManual takes the language tag from the caller.
	MethodManual Method = "manual"
	// MethodParse splits the raw string on the last separator occurrence.
	MethodParse Method = "parse"
)

// config holds resolved conversion options.
type config struct {
	eng *validate.Engine
	sep string
}

// Option configures a conversion call.
type Option func(*config)

// WithEngine sets the validation engine for entities created from raw
// strings. Conversions that start from an entity inherit its engine instead.
func WithEngine(eng *validate.Engine) Option {
	return func(c *config) { c.eng = eng }
}

// WithSeparator sets the separator used by [MethodParse].
func WithSeparator(sep string) Option {
	return func(c *config) { c.sep = sep }
}

// newConfig applies options over the defaults.
func newConfig(opts []Option) config {
	cfg := config{eng: validate.Default(), sep: langtext.DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// # String → Text

// ToText builds a Text with an explicitly supplied language tag (the
// "manual" method).
func ToText(text, lang string, opts ...Option) (*langtext.Text, error) {
	cfg := newConfig(opts)
	return langtext.NewWith(cfg.eng, text, lang)
}

// ParseText builds a Text by splitting raw on the last occurrence of the
// separator (default "@"). Without a separator the whole string becomes the
// text and the language stays empty.
//
//	ParseText("Hello@en")    // text "Hello", lang "en"
//	ParseText("a@b@en")      // text "a@b",   lang "en"
//	ParseText("Hello")       // text "Hello", lang ""
func ParseText(raw string, opts ...Option) (*langtext.Text, error) {
	cfg := newConfig(opts)
	text, lang := splitLast(raw, cfg.sep)
	return langtext.NewWith(cfg.eng, text, lang)
}

// StringToText dispatches on a method identifier. For [MethodManual] arg is
// the language tag; for [MethodParse] arg overrides the separator when
// non-empty. Unknown methods fail with a KIND_ERROR.
func StringToText(method Method, raw, arg string, opts ...Option) (*langtext.Text, error) {
	switch method {
	case MethodManual:
		return ToText(raw, arg, opts...)
	case MethodParse:
		if arg != "" {
			opts = append(opts, WithSeparator(arg))
		}
		return ParseText(raw, opts...)
	default:
		return nil, langerr.Kindf("unknown conversion method %q", method)
	}
}

// StringsToTexts converts each raw string via [StringToText].
func StringsToTexts(method Method, raws []string, arg string, opts ...Option) ([]*langtext.Text, error) {
	out := make([]*langtext.Text, 0, len(raws))
	for _, raw := range raws {
		t, err := StringToText(method, raw, arg, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// splitLast divides raw around the last occurrence of sep.
func splitLast(raw, sep string) (text, lang string) {
	idx := strings.LastIndex(raw, sep)
	if idx < 0 || sep == "" {
		return raw, ""
	}
	return raw[:idx], raw[idx+len(sep):]
}

// # Text → String

// TextToString renders a single entity canonically.
func TextToString(t *langtext.Text, opts ...langtext.RenderOption) string {
	return t.Render(opts...)
}

// TextsToStrings renders each entity canonically and sorts the result
// lexicographically for reproducible output.
func TextsToStrings(ts []*langtext.Text, opts ...langtext.RenderOption) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Render(opts...))
	}
	slices.Sort(out)
	return out
}

// # Text ↔ Set

// TextToSet wraps a single entity into a one-member collection carrying the
// same language tag.
func TextToSet(t *langtext.Text) (*langtext.Set, error) {
	return langtext.NewSetWith(t.Engine(), t.Lang(), t.Value())
}

// TextsToSet merges entities sharing one language (case-insensitively) into
// a collection. The collection's tag follows the merge casing rule; language
// variance beyond casing is a VALUE_ERROR. The input must be non-empty so a
// language tag exists to carry over.
func TextsToSet(ts []*langtext.Text) (*langtext.Set, error) {
	if len(ts) == 0 {
		return nil, langerr.Value("texts", "cannot merge zero entities into a collection")
	}
	observed := make([]string, 0, len(ts))
	texts := make([]string, 0, len(ts))
	for _, t := range ts {
		if !bcp47.EqualFold(t.Lang(), ts[0].Lang()) {
			return nil, langerr.LangMismatch(ts[0].Lang(), t.Lang())
		}
		observed = append(observed, t.Lang())
		texts = append(texts, t.Value())
	}
	return langtext.NewSetWith(ts[0].Engine(), reconcileLang(observed), texts...)
}

// SetToTexts unwraps a collection into one entity per member, sorted by text.
func SetToTexts(s *langtext.Set) []*langtext.Text { return s.AsTexts() }

// SetToStrings renders a collection's members, sorted by text.
func SetToStrings(s *langtext.Set, opts ...langtext.RenderOption) []string {
	return s.Strings(opts...)
}

// StringsToSet builds a collection from raw texts and an explicit language.
func StringsToSet(texts []string, lang string, opts ...Option) (*langtext.Set, error) {
	cfg := newConfig(opts)
	return langtext.NewSetWith(cfg.eng, lang, texts...)
}

// # Text/Set/Map → Map

// TextToMap wraps a single entity into a multi-language collection with one
// key. The entity's language becomes the preferred language.
func TextToMap(t *langtext.Text) (*langtext.Map, error) {
	m := langtext.NewMapWith(t.Engine())
	if err := m.AddText(t); err != nil {
		return nil, err
	}
	if err := m.SetPreferred(t.Lang()); err != nil {
		return nil, err
	}
	return m, nil
}

// TextsToMap aggregates entities of any languages into a multi-language
// collection, reconciling key casing per case-fold group.
func TextsToMap(ts []*langtext.Text, opts ...Option) (*langtext.Map, error) {
	groups := newGrouper()
	for _, t := range ts {
		groups.observe(t.Lang(), []string{t.Value()})
	}
	return groups.build(engineFor(ts, opts))
}

// SetToMap wraps one collection into a multi-language collection with a
// single key. The collection's language becomes the preferred language.
func SetToMap(s *langtext.Set) (*langtext.Map, error) {
	return SetsToMap([]*langtext.Set{s}, WithEngine(s.Engine()))
}

// SetsToMap merges collections of any languages into one multi-language
// collection, reconciling key casing per case-fold group. Empty input
// collections still register their (reconciled) language key, empty.
func SetsToMap(ss []*langtext.Set, opts ...Option) (*langtext.Map, error) {
	groups := newGrouper()
	for _, s := range ss {
		groups.observe(s.Lang(), s.Texts())
	}
	eng := newConfig(opts).eng
	if len(ss) > 0 {
		eng = engineForOpts(ss[0].Engine(), opts)
	}
	m, err := groups.build(eng)
	if err != nil {
		return nil, err
	}
	if len(ss) > 0 {
		if err := m.SetPreferred(m.Langs()[0]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MapsToMap merges several multi-language collections into one, reconciling
// key casing per case-fold group across all inputs. The first input's
// preferred language carries over.
func MapsToMap(ms []*langtext.Map, opts ...Option) (*langtext.Map, error) {
	groups := newGrouper()
	for _, m := range ms {
		for _, lang := range m.Langs() {
			groups.observe(lang, m.Texts(lang))
		}
	}
	eng := newConfig(opts).eng
	if len(ms) > 0 {
		eng = engineForOpts(ms[0].Engine(), opts)
	}
	merged, err := groups.build(eng)
	if err != nil {
		return nil, err
	}
	if len(ms) > 0 && ms[0].Preferred() != "" {
		if err := merged.SetPreferred(ms[0].Preferred()); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// # Map → Text/Set/String

// MapToSets decomposes a multi-language collection into one same-language
// collection per key, sorted by language.
func MapToSets(m *langtext.Map) []*langtext.Set { return m.AllSets() }

// MapToTexts decomposes a multi-language collection into one entity per
// (text, language) pair, sorted by language then text.
func MapToTexts(m *langtext.Map) []*langtext.Text { return m.AllTextEntities() }

// MapToStrings renders every pair of a multi-language collection, sorted by
// language then text.
func MapToStrings(m *langtext.Map, opts ...langtext.RenderOption) []string {
	return m.Strings(opts...)
}

// # Merge plumbing

// grouper accumulates (language, texts) observations keyed by case-folded
// tag, remembering every observed casing for reconciliation.
type grouper struct {
	order    []string            // fold keys in first-seen order
	observed map[string][]string // fold -> casings seen
	texts    map[string][]string // fold -> accumulated texts
}

func newGrouper() *grouper {
	return &grouper{
		observed: make(map[string][]string),
		texts:    make(map[string][]string),
	}
}

// observe records one input's language casing and texts.
func (g *grouper) observe(lang string, texts []string) {
	fold := bcp47.Fold(lang)
	if _, ok := g.observed[fold]; !ok {
		g.order = append(g.order, fold)
	}
	g.observed[fold] = append(g.observed[fold], lang)
	g.texts[fold] = append(g.texts[fold], texts...)
}

// build assembles the merged multi-language collection through its public
// mutation contract.
func (g *grouper) build(eng *validate.Engine) (*langtext.Map, error) {
	m := langtext.NewMapWith(eng)
	for _, fold := range g.order {
		key := reconcileLang(g.observed[fold])
		if err := m.SetEntry(key, g.texts[fold]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// reconcileLang picks the merged key casing for one case-fold group: a single
// consistent casing is preserved verbatim, any variance selects the folded
// form.
func reconcileLang(observed []string) string {
	first := observed[0]
	for _, lang := range observed[1:] {
		if lang != first {
			return bcp47.Fold(first)
		}
	}
	return first
}

// engineFor picks the engine of the first entity, or the configured default
// when the input is empty.
func engineFor(ts []*langtext.Text, opts []Option) *validate.Engine {
	if len(ts) > 0 {
		return engineForOpts(ts[0].Engine(), opts)
	}
	return newConfig(opts).eng
}

// engineForOpts prefers an explicit WithEngine option over the inherited one.
func engineForOpts(inherited *validate.Engine, opts []Option) *validate.Engine {
	cfg := config{eng: inherited, sep: langtext.DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.eng
}
