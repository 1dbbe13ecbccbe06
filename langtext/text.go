// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package langtext implements the three-tier data model for language-tagged text.

Architecture:

  - Text: a single string bound to one language tag. The atomic unit.
  - Set: an unordered collection of unique texts sharing one language tag.
  - Map: a keyed aggregate mapping each language tag to its own text-set,
    with a preferred-language pointer for default lookups.

Every constructor and mutator routes its inputs through the validation engine
before any state changes, so a failed operation always leaves the entity in
its last-valid state. Language-tag comparison is case-folded everywhere;
storage preserves the caller's casing unless the LOWERCASE_LANG flag says
otherwise.

Bulk transformation between the three tiers lives in the converter package —
entities only know how to mutate themselves.
*/
package langtext

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/taibuivan/langbind/bcp47"
	"github.com/taibuivan/langbind/flags"
	"github.com/taibuivan/langbind/langerr"
	"github.com/taibuivan/langbind/validate"
)

// Text is a single string bound to a language tag.
//
// An empty language tag means "language unspecified". Equality and hashing
// case-fold the tag, so "en" and "EN" entities compare equal; the stored
// casing is whatever survived validation.
type Text struct {
	value string
	lang  string
	eng   *validate.Engine
}

// New creates a Text validated against the process-wide default policy.
func New(text, lang string) (*Text, error) {
	return NewWith(validate.Default(), text, lang)
}

// NewWith creates a Text validated by the given engine. Derived entities
// produced by the text algebra inherit the engine.
func NewWith(eng *validate.Engine, text, lang string) (*Text, error) {
	value, err := eng.Text(flags.Text, text)
	if err != nil {
		return nil, err
	}
	normLang, err := eng.Language(flags.Text, lang)
	if err != nil {
		return nil, err
	}
	return &Text{value: value, lang: normLang, eng: eng}, nil
}

// MustNew is like [New] but panics on validation failure.
// Intended for literals in tests and package initialization.
func MustNew(text, lang string) *Text {
	t, err := New(text, lang)
	if err != nil {
		panic(err)
	}
	return t
}

// # Accessors

// Value returns the text content.
func (t *Text) Value() string { return t.value }

// Lang returns the language tag as stored, possibly empty.
func (t *Text) Lang() string { return t.lang }

// Engine returns the validation engine governing this entity.
func (t *Text) Engine() *validate.Engine { return t.eng }

// Len returns the number of Unicode characters in the text.
func (t *Text) Len() int { return utf8.RuneCountInString(t.value) }

// SetValue replaces the text content, re-running validation.
// On failure the entity is unchanged.
func (t *Text) SetValue(text string) error {
	value, err := t.eng.Text(flags.Text, text)
	if err != nil {
		return err
	}
	t.value = value
	return nil
}

// SetLang replaces the language tag, re-running validation.
// On failure the entity is unchanged.
func (t *Text) SetLang(lang string) error {
	normLang, err := t.eng.Language(flags.Text, lang)
	if err != nil {
		return err
	}
	t.lang = normLang
	return nil
}

// derive builds a new Text carrying t's language tag, validating the derived
// value under the single-text namespace.
func (t *Text) derive(value string) (*Text, error) {
	normValue, err := t.eng.Text(flags.Text, value)
	if err != nil {
		return nil, err
	}
	return &Text{value: normValue, lang: t.lang, eng: t.eng}, nil
}

// sameLang fails with a VALUE_ERROR unless o carries a case-fold-equal
// language tag.
func (t *Text) sameLang(o *Text) error {
	if !bcp47.EqualFold(t.lang, o.lang) {
		return langerr.LangMismatch(t.lang, o.lang)
	}
	return nil
}

// # Equality, Ordering, Hashing

// Equal reports whether both entities hold the same text and a
// case-fold-equal language tag. It never fails: mismatched languages simply
// compare unequal.
func (t *Text) Equal(o *Text) bool {
	if o == nil {
		return false
	}
	return t.value == o.value && bcp47.EqualFold(t.lang, o.lang)
}

// EqualString reports whether the text content equals s. The language tag is
// irrelevant when comparing against a raw string.
func (t *Text) EqualString(s string) bool { return t.value == s }

// Compare orders two entities lexicographically by text. Ordering is only
// defined between entities whose language tags match case-insensitively;
// otherwise a VALUE_ERROR is returned.
func (t *Text) Compare(o *Text) (int, error) {
	if err := t.sameLang(o); err != nil {
		return 0, err
	}
	return strings.Compare(t.value, o.value), nil
}

// CompareString orders the text against a raw string, which carries no
// language tag and therefore never mismatches.
func (t *Text) CompareString(s string) int {
	return strings.Compare(t.value, s)
}

// Less reports t < o. Fails like [Text.Compare] on language mismatch.
func (t *Text) Less(o *Text) (bool, error) {
	c, err := t.Compare(o)
	return c < 0, err
}

// LessEqual reports t <= o.
func (t *Text) LessEqual(o *Text) (bool, error) {
	c, err := t.Compare(o)
	return c <= 0, err
}

// Greater reports t > o.
func (t *Text) Greater(o *Text) (bool, error) {
	c, err := t.Compare(o)
	return c > 0, err
}

// GreaterEqual reports t >= o.
func (t *Text) GreaterEqual(o *Text) (bool, error) {
	c, err := t.Compare(o)
	return c >= 0, err
}

// Hash returns a digest over the text and the case-folded language tag, so
// entities differing only in tag casing hash identically.
func (t *Text) Hash() uint64 {
	return hashPair(t.value, t.lang)
}

// hashPair digests a (text, lang) pair with the tag case-folded.
func hashPair(text, lang string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(bcp47.Fold(lang)))
	return h.Sum64()
}

// # Text Algebra
//
// Every operation below produces new entities carrying t's language tag and
// engine; t itself is never mutated. Derived values re-enter validation, so
// an operation that would produce forbidden content (say, an empty string
// under DEFINED_TEXT) fails instead.

// Concat appends o's text. The operand's language must match case-insensitively.
func (t *Text) Concat(o *Text) (*Text, error) {
	if err := t.sameLang(o); err != nil {
		return nil, err
	}
	return t.derive(t.value + o.value)
}

// ConcatString appends a raw string, which carries no language tag.
func (t *Text) ConcatString(s string) (*Text, error) {
	return t.derive(t.value + s)
}

// Repeat concatenates count copies of the text.
func (t *Text) Repeat(count int) (*Text, error) {
	if count < 0 {
		return nil, langerr.Valuef("text", "repeat count must be non-negative, got %d", count)
	}
	return t.derive(strings.Repeat(t.value, count))
}

// Upper uppercases the text using the casing rules of its own language.
func (t *Text) Upper() (*Text, error) {
	return t.derive(cases.Upper(bcp47.Tag(t.lang)).String(t.value))
}

// Lower lowercases the text using the casing rules of its own language.
func (t *Text) Lower() (*Text, error) {
	return t.derive(cases.Lower(bcp47.Tag(t.lang)).String(t.value))
}

// Title title-cases the text using the casing rules of its own language.
func (t *Text) Title() (*Text, error) {
	return t.derive(cases.Title(bcp47.Tag(t.lang)).String(t.value))
}

// Casefold case-folds the text for caseless matching.
func (t *Text) Casefold() (*Text, error) {
	return t.derive(cases.Fold().String(t.value))
}

// TrimSpace removes leading and trailing whitespace.
func (t *Text) TrimSpace() (*Text, error) {
	return t.derive(strings.TrimSpace(t.value))
}

// Trim removes leading and trailing runes contained in cutset.
func (t *Text) Trim(cutset string) (*Text, error) {
	return t.derive(strings.Trim(t.value, cutset))
}

// CutPrefix removes prefix when present; otherwise the result carries the
// text unchanged.
func (t *Text) CutPrefix(prefix string) (*Text, error) {
	value, _ := strings.CutPrefix(t.value, prefix)
	return t.derive(value)
}

// CutSuffix removes suffix when present; otherwise the result carries the
// text unchanged.
func (t *Text) CutSuffix(suffix string) (*Text, error) {
	value, _ := strings.CutSuffix(t.value, suffix)
	return t.derive(value)
}

// Replace substitutes the first n occurrences of old with new; n < 0 means
// all occurrences.
func (t *Text) Replace(old, new string, n int) (*Text, error) {
	return t.derive(strings.Replace(t.value, old, new, n))
}

// Slice returns the text between rune positions [start, end). Out-of-range
// bounds clamp; a start beyond end yields empty text (which may then fail
// the emptiness policy).
func (t *Text) Slice(start, end int) (*Text, error) {
	runes := []rune(t.value)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return t.derive("")
	}
	return t.derive(string(runes[start:end]))
}

// Split divides the text around each instance of sep, returning one entity
// per piece, each tagged with t's language.
func (t *Text) Split(sep string) ([]*Text, error) {
	return t.deriveAll(strings.Split(t.value, sep))
}

// Fields splits the text around runs of whitespace. Unlike [Text.Split],
// it never produces empty pieces.
func (t *Text) Fields() ([]*Text, error) {
	return t.deriveAll(strings.Fields(t.value))
}

// deriveAll validates each piece into a new entity; any failure aborts the
// whole operation.
func (t *Text) deriveAll(pieces []string) ([]*Text, error) {
	out := make([]*Text, 0, len(pieces))
	for _, piece := range pieces {
		derived, err := t.derive(piece)
		if err != nil {
			return nil, err
		}
		out = append(out, derived)
	}
	return out, nil
}

// Join concatenates the items' texts with t as separator. Every item must
// carry a case-fold-equal language tag.
func (t *Text) Join(items []*Text) (*Text, error) {
	values := make([]string, 0, len(items))
	for _, item := range items {
		if err := t.sameLang(item); err != nil {
			return nil, err
		}
		values = append(values, item.value)
	}
	return t.derive(strings.Join(values, t.value))
}

// PadLeft pads the text on the left with pad up to width characters.
func (t *Text) PadLeft(width int, pad rune) (*Text, error) {
	return t.derive(strings.Repeat(string(pad), padCount(t.value, width)) + t.value)
}

// PadRight pads the text on the right with pad up to width characters.
func (t *Text) PadRight(width int, pad rune) (*Text, error) {
	return t.derive(t.value + strings.Repeat(string(pad), padCount(t.value, width)))
}

// Center pads the text evenly on both sides up to width characters, placing
// the odd character on the right.
func (t *Text) Center(width int, pad rune) (*Text, error) {
	total := padCount(t.value, width)
	left := total / 2
	return t.derive(strings.Repeat(string(pad), left) + t.value + strings.Repeat(string(pad), total-left))
}

// padCount returns how many pad characters are needed to reach width.
func padCount(value string, width int) int {
	missing := width - utf8.RuneCountInString(value)
	if missing < 0 {
		return 0
	}
	return missing
}

// Format treats the text as a printf-style format string and produces the
// formatted result under the same language tag.
func (t *Text) Format(args ...any) (*Text, error) {
	return t.derive(fmt.Sprintf(t.value, args...))
}

// # Predicates

// Contains reports whether the text contains sub.
func (t *Text) Contains(sub string) bool { return strings.Contains(t.value, sub) }

// HasPrefix reports whether the text starts with prefix.
func (t *Text) HasPrefix(prefix string) bool { return strings.HasPrefix(t.value, prefix) }

// HasSuffix reports whether the text ends with suffix.
func (t *Text) HasSuffix(suffix string) bool { return strings.HasSuffix(t.value, suffix) }

// Index returns the byte index of the first occurrence of sub, or -1.
func (t *Text) Index(sub string) int { return strings.Index(t.value, sub) }

// Count returns the number of non-overlapping occurrences of sub.
func (t *Text) Count(sub string) int { return strings.Count(t.value, sub) }

// # Rendering

// Render produces the canonical textual shape, seeded from the PRINT_* flags
// of the single-text namespace and overridable per call:
//
//	t.Render()                    // "Hello"@en
//	t.Render(WithLang(false))     // "Hello"
//	t.Render(WithQuotes(false), WithLang(false)) // Hello
func (t *Text) Render(opts ...RenderOption) string {
	cfg := policyConfig(t.eng.Flags(), flags.Text, opts)
	return renderOne(t.value, t.lang, cfg)
}

// String implements [fmt.Stringer] via [Text.Render] with policy defaults.
func (t *Text) String() string { return t.Render() }
