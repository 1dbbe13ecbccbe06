// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package langtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/langbind/flags"
	"github.com/taibuivan/langbind/langerr"
	"github.com/taibuivan/langbind/langtext"
)

// mustSet constructs a Set on an isolated default-policy engine.
func mustSet(t *testing.T, lang string, texts ...string) *langtext.Set {
	t.Helper()
	s, err := langtext.NewSetWith(newEngine(t, nil), lang, texts...)
	require.NoError(t, err)
	return s
}

/*
TestSet_Construction verifies member validation and deterministic output.
*/
func TestSet_Construction(t *testing.T) {
	s := mustSet(t, "en", "World", "Hello", "Hello")

	assert.Equal(t, "en", s.Lang())
	assert.Equal(t, 2, s.Len(), "duplicates collapse")
	assert.Equal(t, []string{"Hello", "World"}, s.Texts(), "output is sorted")

	// Empty member violates DEFINED_TEXT
	_, err := langtext.NewSetWith(newEngine(t, nil), "en", "Hello", "")
	require.Error(t, err)
	assert.True(t, langerr.IsValue(err))
}

/*
TestSet_LanguageMismatch verifies the mismatch failure and that the
collection is untouched afterward.
*/
func TestSet_LanguageMismatch(t *testing.T) {
	s := mustSet(t, "en", "Hello")
	french := mustText(t, "Bonjour", "fr")

	err := s.AddText(french)
	require.Error(t, err)
	assert.True(t, langerr.IsValue(err))
	assert.Equal(t, []string{"Hello"}, s.Texts(), "contents unchanged after failure")

	// Case-only difference is not a mismatch
	require.NoError(t, s.AddText(mustText(t, "Howdy", "EN")))
	assert.Equal(t, []string{"Hello", "Howdy"}, s.Texts())
}

/*
TestSet_DiscardVsRemove verifies the silent/erroring split on absence.
*/
func TestSet_DiscardVsRemove(t *testing.T) {
	s := mustSet(t, "en", "Hello", "World")

	s.Discard("absent") // silent
	assert.Equal(t, 2, s.Len())

	err := s.Remove("absent")
	require.Error(t, err)
	assert.True(t, langerr.IsNotFound(err))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Remove("World"))
	assert.Equal(t, []string{"Hello"}, s.Texts())

	// Discard of an entity with the wrong language still fails
	err = s.DiscardText(mustText(t, "Hello", "fr"))
	assert.True(t, langerr.IsValue(err))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.DiscardText(mustText(t, "Hello", "EN")))
	assert.Equal(t, 0, s.Len())
}

/*
TestSet_BulkMutation verifies AddSet/AddStrings/RemoveSet atomicity.
*/
func TestSet_BulkMutation(t *testing.T) {
	s := mustSet(t, "en", "a")

	require.NoError(t, s.AddSet(mustSet(t, "EN", "b", "c")))
	assert.Equal(t, []string{"a", "b", "c"}, s.Texts())

	assert.True(t, langerr.IsValue(s.AddSet(mustSet(t, "fr", "d"))))

	require.NoError(t, s.AddStrings([]string{"d", "e"}))
	assert.Equal(t, 5, s.Len())

	// One invalid member aborts the whole batch
	err := s.AddStrings([]string{"f", ""})
	require.Error(t, err)
	assert.Equal(t, 5, s.Len(), "no partial mutation")

	// RemoveSet checks presence of every member before deleting anything
	err = s.RemoveSet(mustSet(t, "en", "a", "zz"))
	assert.True(t, langerr.IsNotFound(err))
	assert.Equal(t, 5, s.Len(), "no partial mutation")

	require.NoError(t, s.RemoveSet(mustSet(t, "en", "a", "b")))
	assert.Equal(t, []string{"c", "d", "e"}, s.Texts())

	s.DiscardSet(mustSet(t, "en", "c", "zz")) // absent member skipped
	assert.Equal(t, []string{"d", "e"}, s.Texts())
}

/*
TestSet_AnyDispatch verifies the kind-dispatching mutation entry points.
*/
func TestSet_AnyDispatch(t *testing.T) {
	s := mustSet(t, "en", "a")

	require.NoError(t, s.AddAny("b"))
	require.NoError(t, s.AddAny(mustText(t, "c", "en")))
	require.NoError(t, s.AddAny(mustSet(t, "en", "d")))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Texts())

	err := s.AddAny(42)
	require.Error(t, err)
	assert.True(t, langerr.IsCode(err, langerr.CodeType))

	require.NoError(t, s.DiscardAny("d"))
	require.NoError(t, s.RemoveAny(mustText(t, "c", "en")))
	assert.Equal(t, []string{"a", "b"}, s.Texts())

	assert.True(t, langerr.IsCode(s.DiscardAny(3.14), langerr.CodeType))
	assert.True(t, langerr.IsCode(s.RemoveAny(nil), langerr.CodeType))
}

/*
TestSet_Algebra exercises the binary operations and their language guard.
*/
func TestSet_Algebra(t *testing.T) {
	a := mustSet(t, "en", "x", "y", "z")
	b := mustSet(t, "EN", "y", "z", "w")

	tests := []struct {
		name string
		op   func() (*langtext.Set, error)
		want []string
	}{
		{"union", func() (*langtext.Set, error) { return a.Union(b) }, []string{"w", "x", "y", "z"}},
		{"intersection", func() (*langtext.Set, error) { return a.Intersection(b) }, []string{"y", "z"}},
		{"difference", func() (*langtext.Set, error) { return a.Difference(b) }, []string{"x"}},
		{"symmetric_difference", func() (*langtext.Set, error) { return a.SymmetricDifference(b) }, []string{"w", "x"}},
		{"union_strings", func() (*langtext.Set, error) { return a.UnionStrings([]string{"q"}) }, []string{"q", "x", "y", "z"}},
		{"difference_strings", func() (*langtext.Set, error) { return a.DifferenceStrings([]string{"x"}) }, []string{"y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op()
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Texts())
			assert.Equal(t, "en", out.Lang(), "result carries the receiver's tag")
		})
	}

	t.Run("mismatch_guard", func(t *testing.T) {
		fr := mustSet(t, "fr", "x")
		_, err := a.Union(fr)
		assert.True(t, langerr.IsValue(err))
		_, err = a.SubsetOf(fr)
		assert.True(t, langerr.IsValue(err))
	})

	t.Run("predicates", func(t *testing.T) {
		sub := mustSet(t, "en", "x", "y")
		ok, err := sub.SubsetOf(a)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = a.SupersetOf(sub)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = a.DisjointWith(mustSet(t, "en", "q"))
		require.NoError(t, err)
		assert.True(t, ok)

		assert.True(t, sub.SubsetOfStrings([]string{"x", "y", "z"}))
		assert.True(t, a.SupersetOfStrings([]string{"x"}))
		assert.False(t, a.DisjointWithStrings([]string{"z"}))
	})
}

/*
TestSet_Membership verifies raw-string and entity membership checks.
*/
func TestSet_Membership(t *testing.T) {
	s := mustSet(t, "en", "Hello")

	assert.True(t, s.Has("Hello"))
	assert.False(t, s.Has("hello"))
	assert.True(t, s.HasText(mustText(t, "Hello", "EN")))
	assert.False(t, s.HasText(mustText(t, "Hello", "fr")))
}

/*
TestSet_Equality verifies fold-insensitive language comparison.
*/
func TestSet_Equality(t *testing.T) {
	a := mustSet(t, "en", "x", "y")

	assert.True(t, a.Equal(mustSet(t, "EN", "y", "x")))
	assert.False(t, a.Equal(mustSet(t, "fr", "x", "y")))
	assert.False(t, a.Equal(mustSet(t, "en", "x")))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, a.Hash(), mustSet(t, "EN", "x", "y").Hash())

	clone := a.Clone()
	require.NoError(t, clone.Add("z"))
	assert.Equal(t, 2, a.Len(), "clone is independent")
}

/*
TestSet_Output verifies rendering and entity unwrapping.
*/
func TestSet_Output(t *testing.T) {
	s := mustSet(t, "en", "World", "Hello")

	assert.Equal(t, []string{`"Hello"@en`, `"World"@en`}, s.Strings())
	assert.Equal(t, []string{"Hello", "World"},
		s.Strings(langtext.WithQuotes(false), langtext.WithLang(false)))
	assert.Equal(t, `{"Hello", "World"}@en`, s.String())

	entities := s.AsTexts()
	require.Len(t, entities, 2)
	assert.Equal(t, "Hello", entities[0].Value())
	assert.Equal(t, "en", entities[0].Lang())

	t.Run("policy_flags_respected", func(t *testing.T) {
		eng := newEngine(t, map[flags.Name]bool{flags.PrintWithLang: false})
		s, err := langtext.NewSetWith(eng, "en", "Hello")
		require.NoError(t, err)
		assert.Equal(t, `{"Hello"}`, s.String())
	})
}

/*
TestSet_SetLang verifies re-validation of the collection tag.
*/
func TestSet_SetLang(t *testing.T) {
	s := mustSet(t, "en", "Hello")
	require.NoError(t, s.SetLang("fr"))
	assert.Equal(t, "fr", s.Lang())

	eng := newEngine(t, map[flags.Name]bool{flags.ValidLang: true})
	s2, err := langtext.NewSetWith(eng, "en", "Hello")
	require.NoError(t, err)
	err = s2.SetLang("not a tag")
	assert.True(t, langerr.IsValue(err))
	assert.Equal(t, "en", s2.Lang(), "unchanged after failure")
}
