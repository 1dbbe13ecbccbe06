// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package langtext

import (
	"strconv"
	"strings"

	"github.com/taibuivan/langbind/bcp47"
	"github.com/taibuivan/langbind/flags"
	"github.com/taibuivan/langbind/langerr"
	"github.com/taibuivan/langbind/pkg/sets"
	"github.com/taibuivan/langbind/validate"
)

// Set is an unordered collection of unique texts sharing one language tag.
//
// Every element independently satisfies the text validation rules of the
// same-language-collection namespace. Operations taking a [*Text] or another
// [*Set] require a case-fold-equal language tag; raw strings carry no tag and
// are accepted without a language check.
type Set struct {
	texts sets.Set[string]
	lang  string
	eng   *validate.Engine
}

// NewSet creates a Set under the process-wide default policy.
func NewSet(lang string, texts ...string) (*Set, error) {
	return NewSetWith(validate.Default(), lang, texts...)
}

// NewSetWith creates a Set validated by the given engine. Initial texts are
// validated one by one; the first failure aborts construction.
func NewSetWith(eng *validate.Engine, lang string, texts ...string) (*Set, error) {
	normLang, err := eng.Language(flags.TextSet, lang)
	if err != nil {
		return nil, err
	}
	s := &Set{texts: sets.New[string](), lang: normLang, eng: eng}
	for _, text := range texts {
		if err := s.Add(text); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newSetUnchecked assembles a Set from already-validated members. Internal
// fast path for set algebra and the converter-facing accessors.
func newSetUnchecked(eng *validate.Engine, lang string, texts sets.Set[string]) *Set {
	return &Set{texts: texts, lang: lang, eng: eng}
}

// # Accessors

// Lang returns the collection's language tag.
func (s *Set) Lang() string { return s.lang }

// Engine returns the validation engine governing this entity.
func (s *Set) Engine() *validate.Engine { return s.eng }

// Len returns the number of member texts.
func (s *Set) Len() int { return s.texts.Len() }

// SetLang replaces the collection's language tag, re-running validation.
func (s *Set) SetLang(lang string) error {
	normLang, err := s.eng.Language(flags.TextSet, lang)
	if err != nil {
		return err
	}
	s.lang = normLang
	return nil
}

// Has reports whether the raw text is a member.
func (s *Set) Has(text string) bool { return s.texts.Has(text) }

// HasText reports whether t is a member: its text must be present and its
// language tag must match case-insensitively.
func (s *Set) HasText(t *Text) bool {
	return bcp47.EqualFold(s.lang, t.lang) && s.texts.Has(t.value)
}

// sameLang fails with a VALUE_ERROR unless lang matches the collection's tag
// case-insensitively.
func (s *Set) sameLang(lang string) error {
	if !bcp47.EqualFold(s.lang, lang) {
		return langerr.LangMismatch(s.lang, lang)
	}
	return nil
}

// # Mutation

// Add validates the raw text and inserts it. Duplicates collapse silently.
func (s *Set) Add(text string) error {
	normText, err := s.eng.Text(flags.TextSet, text)
	if err != nil {
		return err
	}
	s.texts.Add(normText)
	return nil
}

// AddText inserts t's text. The language tags must match.
func (s *Set) AddText(t *Text) error {
	if err := s.sameLang(t.lang); err != nil {
		return err
	}
	return s.Add(t.value)
}

// AddSet inserts every member of o. The language tags must match, and every
// incoming text is re-validated under this collection's policy before any
// state changes.
func (s *Set) AddSet(o *Set) error {
	if err := s.sameLang(o.lang); err != nil {
		return err
	}
	normalized, err := s.normalizeAll(sets.Sorted(o.texts))
	if err != nil {
		return err
	}
	for _, text := range normalized {
		s.texts.Add(text)
	}
	return nil
}

// AddStrings inserts each raw text, validating every one before any state
// changes.
func (s *Set) AddStrings(texts []string) error {
	normalized, err := s.normalizeAll(texts)
	if err != nil {
		return err
	}
	for _, text := range normalized {
		s.texts.Add(text)
	}
	return nil
}

// normalizeAll validates a batch of candidate texts without mutating the set.
func (s *Set) normalizeAll(texts []string) ([]string, error) {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		normText, err := s.eng.Text(flags.TextSet, text)
		if err != nil {
			return nil, err
		}
		out = append(out, normText)
	}
	return out, nil
}

// Discard removes the raw text if present. Absence is not an error.
func (s *Set) Discard(text string) { s.texts.Delete(text) }

// DiscardText removes t's text if present. A mismatched language tag is a
// VALUE_ERROR; absence of the text is not.
func (s *Set) DiscardText(t *Text) error {
	if err := s.sameLang(t.lang); err != nil {
		return err
	}
	s.texts.Delete(t.value)
	return nil
}

// DiscardSet removes every member of o that is present. The language tags
// must match; absent members are skipped silently.
func (s *Set) DiscardSet(o *Set) error {
	if err := s.sameLang(o.lang); err != nil {
		return err
	}
	for text := range o.texts {
		s.texts.Delete(text)
	}
	return nil
}

// Remove deletes the raw text, failing with NOT_FOUND if absent.
func (s *Set) Remove(text string) error {
	if !s.texts.Has(text) {
		return langerr.NotFound("text " + strconv.Quote(text))
	}
	s.texts.Delete(text)
	return nil
}

// RemoveText deletes t's text. A mismatched language tag is a VALUE_ERROR;
// an absent text is NOT_FOUND.
func (s *Set) RemoveText(t *Text) error {
	if err := s.sameLang(t.lang); err != nil {
		return err
	}
	return s.Remove(t.value)
}

// RemoveSet deletes every member of o. All members are checked for presence
// before anything is deleted, so a NOT_FOUND failure leaves s unchanged.
func (s *Set) RemoveSet(o *Set) error {
	if err := s.sameLang(o.lang); err != nil {
		return err
	}
	for text := range o.texts {
		if !s.texts.Has(text) {
			return langerr.NotFound("text " + strconv.Quote(text))
		}
	}
	for text := range o.texts {
		s.texts.Delete(text)
	}
	return nil
}

// # Polymorphic mutation
//
// The Any variants accept a raw string, a *Text, or another *Set, mirroring
// the typed methods above. Anything else is a TYPE_ERROR.

// AddAny dispatches on arg's kind and inserts accordingly.
func (s *Set) AddAny(arg any) error {
	switch v := arg.(type) {
	case string:
		return s.Add(v)
	case *Text:
		return s.AddText(v)
	case *Set:
		return s.AddSet(v)
	default:
		return langerr.Typef("arg", "expected string, *Text or *Set, got %T", arg)
	}
}

// DiscardAny dispatches on arg's kind and discards accordingly.
func (s *Set) DiscardAny(arg any) error {
	switch v := arg.(type) {
	case string:
		s.Discard(v)
		return nil
	case *Text:
		return s.DiscardText(v)
	case *Set:
		return s.DiscardSet(v)
	default:
		return langerr.Typef("arg", "expected string, *Text or *Set, got %T", arg)
	}
}

// RemoveAny dispatches on arg's kind and removes accordingly.
func (s *Set) RemoveAny(arg any) error {
	switch v := arg.(type) {
	case string:
		return s.Remove(v)
	case *Text:
		return s.RemoveText(v)
	case *Set:
		return s.RemoveSet(v)
	default:
		return langerr.Typef("arg", "expected string, *Text or *Set, got %T", arg)
	}
}

// # Set Algebra
//
// Binary operations over another Set require a case-fold-equal language tag
// and yield a new Set carrying the receiver's tag and engine. The *Strings
// variants accept raw string collections, which carry no tag and therefore
// skip the language check.

// Union returns a new Set holding members of either operand.
func (s *Set) Union(o *Set) (*Set, error) {
	if err := s.sameLang(o.lang); err != nil {
		return nil, err
	}
	return newSetUnchecked(s.eng, s.lang, s.texts.Union(o.texts)), nil
}

// UnionStrings returns a new Set additionally holding the given raw texts,
// each validated under this collection's policy.
func (s *Set) UnionStrings(texts []string) (*Set, error) {
	normalized, err := s.normalizeAll(texts)
	if err != nil {
		return nil, err
	}
	return newSetUnchecked(s.eng, s.lang, s.texts.Union(sets.New(normalized...))), nil
}

// Intersection returns a new Set holding members present in both operands.
func (s *Set) Intersection(o *Set) (*Set, error) {
	if err := s.sameLang(o.lang); err != nil {
		return nil, err
	}
	return newSetUnchecked(s.eng, s.lang, s.texts.Intersection(o.texts)), nil
}

// IntersectionStrings returns a new Set holding members also present in the
// raw collection.
func (s *Set) IntersectionStrings(texts []string) (*Set, error) {
	return newSetUnchecked(s.eng, s.lang, s.texts.Intersection(sets.New(texts...))), nil
}

// Difference returns a new Set holding members of s absent from o.
func (s *Set) Difference(o *Set) (*Set, error) {
	if err := s.sameLang(o.lang); err != nil {
		return nil, err
	}
	return newSetUnchecked(s.eng, s.lang, s.texts.Difference(o.texts)), nil
}

// DifferenceStrings returns a new Set holding members absent from the raw
// collection.
func (s *Set) DifferenceStrings(texts []string) (*Set, error) {
	return newSetUnchecked(s.eng, s.lang, s.texts.Difference(sets.New(texts...))), nil
}

// SymmetricDifference returns a new Set holding members of exactly one operand.
func (s *Set) SymmetricDifference(o *Set) (*Set, error) {
	if err := s.sameLang(o.lang); err != nil {
		return nil, err
	}
	return newSetUnchecked(s.eng, s.lang, s.texts.SymmetricDifference(o.texts)), nil
}

// SymmetricDifferenceStrings returns a new Set holding members of exactly one
// operand; incoming raw texts are validated.
func (s *Set) SymmetricDifferenceStrings(texts []string) (*Set, error) {
	normalized, err := s.normalizeAll(texts)
	if err != nil {
		return nil, err
	}
	return newSetUnchecked(s.eng, s.lang, s.texts.SymmetricDifference(sets.New(normalized...))), nil
}

// SubsetOf reports whether every member of s is also in o.
func (s *Set) SubsetOf(o *Set) (bool, error) {
	if err := s.sameLang(o.lang); err != nil {
		return false, err
	}
	return s.texts.SubsetOf(o.texts), nil
}

// SupersetOf reports whether every member of o is also in s.
func (s *Set) SupersetOf(o *Set) (bool, error) {
	if err := s.sameLang(o.lang); err != nil {
		return false, err
	}
	return s.texts.SupersetOf(o.texts), nil
}

// DisjointWith reports whether the operands share no members.
func (s *Set) DisjointWith(o *Set) (bool, error) {
	if err := s.sameLang(o.lang); err != nil {
		return false, err
	}
	return s.texts.DisjointWith(o.texts), nil
}

// SubsetOfStrings reports whether every member of s is in the raw collection.
func (s *Set) SubsetOfStrings(texts []string) bool {
	return s.texts.SubsetOf(sets.New(texts...))
}

// SupersetOfStrings reports whether every raw text is a member of s.
func (s *Set) SupersetOfStrings(texts []string) bool {
	return s.texts.SupersetOf(sets.New(texts...))
}

// DisjointWithStrings reports whether s shares no members with the raw
// collection.
func (s *Set) DisjointWithStrings(texts []string) bool {
	return s.texts.DisjointWith(sets.New(texts...))
}

// # Equality and Copying

// Equal reports whether both collections carry case-fold-equal language tags
// and exactly the same texts.
func (s *Set) Equal(o *Set) bool {
	if o == nil {
		return false
	}
	return bcp47.EqualFold(s.lang, o.lang) && s.texts.Equal(o.texts)
}

// Hash returns a digest over the sorted texts and the case-folded tag.
func (s *Set) Hash() uint64 {
	return hashPair(strings.Join(s.Texts(), "\x00"), s.lang)
}

// Clone returns an independent copy sharing the same engine.
func (s *Set) Clone() *Set {
	return newSetUnchecked(s.eng, s.lang, s.texts.Clone())
}

// # Output

// Texts returns the member texts sorted lexicographically.
func (s *Set) Texts() []string { return sets.Sorted(s.texts) }

// AsTexts returns one [*Text] per member, each carrying the collection's
// language tag, sorted lexicographically by text.
func (s *Set) AsTexts() []*Text {
	sorted := sets.Sorted(s.texts)
	out := make([]*Text, 0, len(sorted))
	for _, text := range sorted {
		out = append(out, &Text{value: text, lang: s.lang, eng: s.eng})
	}
	return out
}

// Strings returns the members rendered canonically, sorted lexicographically
// by text. Options override the PRINT_* policy of the collection namespace.
func (s *Set) Strings(opts ...RenderOption) []string {
	cfg := policyConfig(s.eng.Flags(), flags.TextSet, opts)
	sorted := sets.Sorted(s.texts)
	out := make([]string, 0, len(sorted))
	for _, text := range sorted {
		out = append(out, renderOne(text, s.lang, cfg))
	}
	return out
}

// String renders the whole collection as `{"a", "b"}@en`, honoring the
// PRINT_* policy of the collection namespace.
func (s *Set) String() string {
	cfg := policyConfig(s.eng.Flags(), flags.TextSet, nil)
	sorted := sets.Sorted(s.texts)
	rendered := make([]string, 0, len(sorted))
	for _, text := range sorted {
		// Language suffix goes on the whole set, not each element
		rendered = append(rendered, renderOne(text, "", cfg))
	}
	out := "{" + strings.Join(rendered, ", ") + "}"
	if cfg.withLang && s.lang != "" {
		out += cfg.sep + s.lang
	}
	return out
}
