// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package langtext

import (
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/langbind/bcp47"
	"github.com/taibuivan/langbind/flags"
	"github.com/taibuivan/langbind/langerr"
	"github.com/taibuivan/langbind/pkg/sets"
	"github.com/taibuivan/langbind/validate"
)

// Map is a keyed aggregate from language tag to a set of unique texts, plus a
// preferred-language pointer used for default lookups.
//
// Keys are matched case-insensitively but stored with the casing they first
// arrived in (unless LOWERCASE_LANG normalized them). A language key is never
// associated with an empty text-set unless it was explicitly created empty
// via [Map.AddEmptyLang], or emptied by a discard without cleanEmpty.
//
// Equality and hashing are computed solely from the entries; the preferred
// language is ignored.
type Map struct {
	entries map[string]sets.Set[string]
	// index maps the case-folded tag to the stored key casing
	index map[string]string
	pref  string
	eng   *validate.Engine
}

// NewMap creates an empty Map under the process-wide default policy.
func NewMap() *Map { return NewMapWith(validate.Default()) }

// NewMapWith creates an empty Map validated by the given engine.
func NewMapWith(eng *validate.Engine) *Map {
	return &Map{
		entries: make(map[string]sets.Set[string]),
		index:   make(map[string]string),
		eng:     eng,
	}
}

// NewMapFromEntries creates a Map from a raw language→texts mapping.
// Every pair is validated; a key listed with no texts is created empty.
func NewMapFromEntries(entries map[string][]string) (*Map, error) {
	return NewMapFromEntriesWith(validate.Default(), entries)
}

// NewMapFromEntriesWith is [NewMapFromEntries] with an explicit engine.
func NewMapFromEntriesWith(eng *validate.Engine, entries map[string][]string) (*Map, error) {
	m := NewMapWith(eng)
	// Deterministic insertion so first-seen key casing does not depend on
	// map iteration order
	langs := make([]string, 0, len(entries))
	for lang := range entries {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	for _, lang := range langs {
		if len(entries[lang]) == 0 {
			if err := m.AddEmptyLang(lang); err != nil {
				return nil, err
			}
			continue
		}
		for _, text := range entries[lang] {
			if err := m.Add(text, lang); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// # Accessors

// Engine returns the validation engine governing this entity.
func (m *Map) Engine() *validate.Engine { return m.eng }

// Preferred returns the preferred language tag, possibly empty.
func (m *Map) Preferred() string { return m.pref }

// SetPreferred replaces the preferred language tag, re-running validation.
// The tag does not need to be present in the entries.
func (m *Map) SetPreferred(lang string) error {
	normLang, err := m.eng.Language(flags.TextMap, lang)
	if err != nil {
		return err
	}
	m.pref = normLang
	return nil
}

// LenLangs returns the number of language keys.
func (m *Map) LenLangs() int { return len(m.entries) }

// Len returns the total number of texts across all languages.
func (m *Map) Len() int {
	total := 0
	for _, texts := range m.entries {
		total += texts.Len()
	}
	return total
}

// storedKey resolves a language tag to its stored key casing.
func (m *Map) storedKey(lang string) (string, bool) {
	key, ok := m.index[bcp47.Fold(lang)]
	return key, ok
}

// ensureKey returns the stored key for lang, creating an empty entry under
// the given casing if the language is new.
func (m *Map) ensureKey(lang string) string {
	if key, ok := m.storedKey(lang); ok {
		return key
	}
	m.entries[lang] = sets.New[string]()
	m.index[bcp47.Fold(lang)] = lang
	return lang
}

// deleteKey drops a stored key and its fold-index entry.
func (m *Map) deleteKey(key string) {
	delete(m.entries, key)
	delete(m.index, bcp47.Fold(key))
}

// # Adding

// Add validates the (text, language) pair and inserts it, creating the
// language key if needed.
func (m *Map) Add(text, lang string) error {
	normText, err := m.eng.Text(flags.TextMap, text)
	if err != nil {
		return err
	}
	normLang, err := m.eng.Language(flags.TextMap, lang)
	if err != nil {
		return err
	}
	key := m.ensureKey(normLang)
	m.entries[key].Add(normText)
	return nil
}

// AddText inserts the entity's (text, language) pair.
func (m *Map) AddText(t *Text) error { return m.Add(t.value, t.lang) }

// AddEmptyLang registers a language key with no texts. Adding an already
// registered language is a no-op.
func (m *Map) AddEmptyLang(lang string) error {
	normLang, err := m.eng.Language(flags.TextMap, lang)
	if err != nil {
		return err
	}
	m.ensureKey(normLang)
	return nil
}

// AddSet merges every member of s under its language. The whole batch is
// validated before any state changes. An empty set contributes nothing.
func (m *Map) AddSet(s *Set) error {
	return m.addBatch(s.Lang(), s.Texts())
}

// AddMap merges every entry of o. The whole batch is validated before any
// state changes; explicitly empty language keys of o are registered too.
func (m *Map) AddMap(o *Map) error {
	type batch struct {
		lang  string
		texts []string
	}
	batches := make([]batch, 0, len(o.entries))
	for _, lang := range o.Langs() {
		normLang, err := m.eng.Language(flags.TextMap, lang)
		if err != nil {
			return err
		}
		texts, err := m.normalizeTexts(o.Texts(lang))
		if err != nil {
			return err
		}
		batches = append(batches, batch{lang: normLang, texts: texts})
	}
	for _, b := range batches {
		key := m.ensureKey(b.lang)
		for _, text := range b.texts {
			m.entries[key].Add(text)
		}
	}
	return nil
}

// addBatch validates a language and its texts, then commits atomically.
func (m *Map) addBatch(lang string, texts []string) error {
	normLang, err := m.eng.Language(flags.TextMap, lang)
	if err != nil {
		return err
	}
	normalized, err := m.normalizeTexts(texts)
	if err != nil {
		return err
	}
	if len(normalized) == 0 {
		return nil
	}
	key := m.ensureKey(normLang)
	for _, text := range normalized {
		m.entries[key].Add(text)
	}
	return nil
}

// normalizeTexts validates a batch of texts without mutating the map.
func (m *Map) normalizeTexts(texts []string) ([]string, error) {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		normText, err := m.eng.Text(flags.TextMap, text)
		if err != nil {
			return nil, err
		}
		out = append(out, normText)
	}
	return out, nil
}

// # Discarding (silent on absence)

// Discard removes the (text, language) pair if present. When cleanEmpty is
// true and the language's text-set becomes empty, the key is deleted; when
// false, the emptied key stays registered.
func (m *Map) Discard(text, lang string, cleanEmpty bool) {
	key, ok := m.storedKey(lang)
	if !ok {
		return
	}
	m.entries[key].Delete(text)
	if cleanEmpty && m.entries[key].Len() == 0 {
		m.deleteKey(key)
	}
}

// DiscardText removes the entity's (text, language) pair if present.
func (m *Map) DiscardText(t *Text, cleanEmpty bool) {
	m.Discard(t.value, t.lang, cleanEmpty)
}

// DiscardSet removes every member of s present under its language.
func (m *Map) DiscardSet(s *Set, cleanEmpty bool) {
	for _, text := range s.Texts() {
		m.Discard(text, s.Lang(), cleanEmpty)
	}
}

// DiscardMap removes every (text, language) pair of o that is present.
func (m *Map) DiscardMap(o *Map, cleanEmpty bool) {
	for _, lang := range o.Langs() {
		for _, text := range o.Texts(lang) {
			m.Discard(text, lang, cleanEmpty)
		}
	}
}

// DiscardLang drops a language key and all its texts. Absence is not an error.
func (m *Map) DiscardLang(lang string) {
	if key, ok := m.storedKey(lang); ok {
		m.deleteKey(key)
	}
}

// # Removing (NOT_FOUND on absence)

// Remove deletes the (text, language) pair, failing with NOT_FOUND if the
// language or the text is absent. Removing the last text of a language
// deletes the key entirely.
func (m *Map) Remove(text, lang string) error {
	key, ok := m.storedKey(lang)
	if !ok {
		return langerr.NotFound("language " + strconv.Quote(lang))
	}
	if !m.entries[key].Has(text) {
		return langerr.NotFound("text " + strconv.Quote(text) + " in language " + strconv.Quote(key))
	}
	m.entries[key].Delete(text)
	if m.entries[key].Len() == 0 {
		m.deleteKey(key)
	}
	return nil
}

// RemoveText deletes the entity's (text, language) pair.
func (m *Map) RemoveText(t *Text) error { return m.Remove(t.value, t.lang) }

// RemoveSet deletes every member of s under its language. Presence of all
// members is checked before anything is deleted, so a NOT_FOUND failure
// leaves m unchanged.
func (m *Map) RemoveSet(s *Set) error {
	key, ok := m.storedKey(s.Lang())
	if !ok {
		return langerr.NotFound("language " + strconv.Quote(s.Lang()))
	}
	for _, text := range s.Texts() {
		if !m.entries[key].Has(text) {
			return langerr.NotFound("text " + strconv.Quote(text) + " in language " + strconv.Quote(key))
		}
	}
	for _, text := range s.Texts() {
		m.entries[key].Delete(text)
	}
	if m.entries[key].Len() == 0 {
		m.deleteKey(key)
	}
	return nil
}

// RemoveMap deletes every (text, language) pair of o. Presence of every pair
// is checked before anything is deleted.
func (m *Map) RemoveMap(o *Map) error {
	for _, lang := range o.Langs() {
		key, ok := m.storedKey(lang)
		if !ok {
			return langerr.NotFound("language " + strconv.Quote(lang))
		}
		for _, text := range o.Texts(lang) {
			if !m.entries[key].Has(text) {
				return langerr.NotFound("text " + strconv.Quote(text) + " in language " + strconv.Quote(key))
			}
		}
	}
	for _, lang := range o.Langs() {
		key, _ := m.storedKey(lang)
		for _, text := range o.Texts(lang) {
			m.entries[key].Delete(text)
		}
		if m.entries[key].Len() == 0 {
			m.deleteKey(key)
		}
	}
	return nil
}

// RemoveLang deletes a language key and all its texts, failing with
// NOT_FOUND if the language is absent.
func (m *Map) RemoveLang(lang string) error {
	key, ok := m.storedKey(lang)
	if !ok {
		return langerr.NotFound("language " + strconv.Quote(lang))
	}
	m.deleteKey(key)
	return nil
}

// # Polymorphic mutation
//
// The Any variants accept a [Pair], a *Text, a *Set, or another *Map,
// mirroring the typed methods above. Anything else is a TYPE_ERROR.

// Pair is a raw (text, language) tuple for the polymorphic entry points.
type Pair struct {
	Text string
	Lang string
}

// AddAny dispatches on arg's kind and inserts accordingly.
func (m *Map) AddAny(arg any) error {
	switch v := arg.(type) {
	case Pair:
		return m.Add(v.Text, v.Lang)
	case *Text:
		return m.AddText(v)
	case *Set:
		return m.AddSet(v)
	case *Map:
		return m.AddMap(v)
	default:
		return langerr.Typef("arg", "expected Pair, *Text, *Set or *Map, got %T", arg)
	}
}

// DiscardAny dispatches on arg's kind and discards accordingly.
func (m *Map) DiscardAny(arg any, cleanEmpty bool) error {
	switch v := arg.(type) {
	case Pair:
		m.Discard(v.Text, v.Lang, cleanEmpty)
	case *Text:
		m.DiscardText(v, cleanEmpty)
	case *Set:
		m.DiscardSet(v, cleanEmpty)
	case *Map:
		m.DiscardMap(v, cleanEmpty)
	default:
		return langerr.Typef("arg", "expected Pair, *Text, *Set or *Map, got %T", arg)
	}
	return nil
}

// RemoveAny dispatches on arg's kind and removes accordingly.
func (m *Map) RemoveAny(arg any) error {
	switch v := arg.(type) {
	case Pair:
		return m.Remove(v.Text, v.Lang)
	case *Text:
		return m.RemoveText(v)
	case *Set:
		return m.RemoveSet(v)
	case *Map:
		return m.RemoveMap(v)
	default:
		return langerr.Typef("arg", "expected Pair, *Text, *Set or *Map, got %T", arg)
	}
}

// # Retrieval (never fails; absent languages yield empty results)

// Langs returns the stored language keys sorted lexicographically.
func (m *Map) Langs() []string {
	langs := make([]string, 0, len(m.entries))
	for lang := range m.entries {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Texts returns the texts of a language sorted lexicographically, or an
// empty slice if the language is absent.
func (m *Map) Texts(lang string) []string {
	key, ok := m.storedKey(lang)
	if !ok {
		return []string{}
	}
	return sets.Sorted(m.entries[key])
}

// PreferredTexts returns the texts of the preferred language.
func (m *Map) PreferredTexts() []string { return m.Texts(m.pref) }

// AllTexts returns every text across all languages, sorted lexicographically.
// A text present under several languages appears once per language.
func (m *Map) AllTexts() []string {
	out := make([]string, 0, m.Len())
	for _, texts := range m.entries {
		out = append(out, sets.Sorted(texts)...)
	}
	slices.Sort(out)
	return out
}

// TextEntities returns one [*Text] per member of the language, tagged with
// the stored key casing and sorted by text.
func (m *Map) TextEntities(lang string) []*Text {
	key, ok := m.storedKey(lang)
	if !ok {
		return []*Text{}
	}
	out := make([]*Text, 0, m.entries[key].Len())
	for _, text := range sets.Sorted(m.entries[key]) {
		out = append(out, &Text{value: text, lang: key, eng: m.eng})
	}
	return out
}

// AllTextEntities returns every (text, language) pair as entities, sorted by
// language then text.
func (m *Map) AllTextEntities() []*Text {
	out := make([]*Text, 0, m.Len())
	for _, lang := range m.Langs() {
		out = append(out, m.TextEntities(lang)...)
	}
	return out
}

// SetFor returns the language's texts as a same-language collection. An
// absent language yields an empty collection carrying the requested tag.
func (m *Map) SetFor(lang string) *Set {
	key, ok := m.storedKey(lang)
	if !ok {
		return newSetUnchecked(m.eng, lang, sets.New[string]())
	}
	return newSetUnchecked(m.eng, key, m.entries[key].Clone())
}

// PreferredSet returns the preferred language's collection.
func (m *Map) PreferredSet() *Set { return m.SetFor(m.pref) }

// AllSets returns one collection per stored language, sorted by language.
func (m *Map) AllSets() []*Set {
	out := make([]*Set, 0, len(m.entries))
	for _, lang := range m.Langs() {
		out = append(out, m.SetFor(lang))
	}
	return out
}

// # Indexed access (NOT_FOUND on absent keys)

// Entry returns the texts of a language, failing with NOT_FOUND if the
// language key is absent.
func (m *Map) Entry(lang string) ([]string, error) {
	key, ok := m.storedKey(lang)
	if !ok {
		return nil, langerr.NotFound("language " + strconv.Quote(lang))
	}
	return sets.Sorted(m.entries[key]), nil
}

// SetEntry assigns a language's entire text-set, validating every value.
// An existing fold-equal key keeps its stored casing; assigning no texts
// leaves the key registered but empty.
func (m *Map) SetEntry(lang string, texts []string) error {
	normLang, err := m.eng.Language(flags.TextMap, lang)
	if err != nil {
		return err
	}
	normalized, err := m.normalizeTexts(texts)
	if err != nil {
		return err
	}
	key := m.ensureKey(normLang)
	m.entries[key] = sets.New(normalized...)
	return nil
}

// DeleteEntry removes a language key and all its texts, failing with
// NOT_FOUND if absent. Equivalent to [Map.RemoveLang].
func (m *Map) DeleteEntry(lang string) error { return m.RemoveLang(lang) }

// # Popping (retrieve and delete; absence yields nil, never an error)

// PopTexts returns the language's sorted texts and deletes the key, or nil
// if the language is absent.
func (m *Map) PopTexts(lang string) []string {
	key, ok := m.storedKey(lang)
	if !ok {
		return nil
	}
	texts := sets.Sorted(m.entries[key])
	m.deleteKey(key)
	return texts
}

// PopPreferredTexts pops the preferred language's texts.
func (m *Map) PopPreferredTexts() []string { return m.PopTexts(m.pref) }

// PopSet returns the language's collection and deletes the key, or nil if
// the language is absent.
func (m *Map) PopSet(lang string) *Set {
	key, ok := m.storedKey(lang)
	if !ok {
		return nil
	}
	s := newSetUnchecked(m.eng, key, m.entries[key].Clone())
	m.deleteKey(key)
	return s
}

// # Membership

// Contains reports whether the (text, language) pair is present.
func (m *Map) Contains(text, lang string) bool {
	key, ok := m.storedKey(lang)
	return ok && m.entries[key].Has(text)
}

// ContainsText reports whether the entity's (text, language) pair is present.
func (m *Map) ContainsText(t *Text) bool { return m.Contains(t.value, t.lang) }

// ContainsLang reports whether the language key is registered.
func (m *Map) ContainsLang(lang string) bool {
	_, ok := m.storedKey(lang)
	return ok
}

// ContainsSet reports whether every member of s is present under its
// language.
func (m *Map) ContainsSet(s *Set) bool {
	key, ok := m.storedKey(s.Lang())
	if !ok {
		return false
	}
	for _, text := range s.Texts() {
		if !m.entries[key].Has(text) {
			return false
		}
	}
	return true
}

// ContainsMap reports whether every language of o exists here and every one
// of its texts for that language is present.
func (m *Map) ContainsMap(o *Map) bool {
	for _, lang := range o.Langs() {
		key, ok := m.storedKey(lang)
		if !ok {
			return false
		}
		for _, text := range o.Texts(lang) {
			if !m.entries[key].Has(text) {
				return false
			}
		}
	}
	return true
}

// # Equality and Copying

// Equal reports whether both maps hold exactly the same entries. Language
// keys compare case-insensitively; the preferred language is ignored.
func (m *Map) Equal(o *Map) bool {
	if o == nil || len(m.entries) != len(o.entries) {
		return false
	}
	for lang, texts := range m.entries {
		key, ok := o.storedKey(lang)
		if !ok || !texts.Equal(o.entries[key]) {
			return false
		}
	}
	return true
}

// Hash returns a digest over the entries with language keys case-folded, so
// maps differing only in key casing hash identically. The preferred language
// does not participate.
func (m *Map) Hash() uint64 {
	parts := make([]string, 0, len(m.entries))
	for lang, texts := range m.entries {
		parts = append(parts, bcp47.Fold(lang)+"\x00"+strings.Join(sets.Sorted(texts), "\x00"))
	}
	slices.Sort(parts)
	return hashPair(strings.Join(parts, "\x01"), "")
}

// Clone returns an independent deep copy sharing the same engine. The
// preferred language is copied too.
func (m *Map) Clone() *Map {
	out := NewMapWith(m.eng)
	out.pref = m.pref
	for lang, texts := range m.entries {
		out.entries[lang] = texts.Clone()
		out.index[bcp47.Fold(lang)] = lang
	}
	return out
}

// # Output

// Strings renders every (text, language) pair canonically, sorted by
// language then text. Options override the PRINT_* policy of the
// multi-language namespace.
func (m *Map) Strings(opts ...RenderOption) []string {
	cfg := policyConfig(m.eng.Flags(), flags.TextMap, opts)
	out := make([]string, 0, m.Len())
	for _, lang := range m.Langs() {
		for _, text := range m.Texts(lang) {
			out = append(out, renderOne(text, lang, cfg))
		}
	}
	return out
}

// String joins the rendered entries with ", ", honoring the PRINT_* policy
// of the multi-language namespace.
func (m *Map) String() string { return strings.Join(m.Strings(), ", ") }
