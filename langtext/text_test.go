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
	"github.com/taibuivan/langbind/validate"
)

// newEngine builds an isolated engine so tests never share the process-wide
// default registry.
func newEngine(t *testing.T, overrides map[flags.Name]bool) *validate.Engine {
	t.Helper()
	reg := flags.New()
	for name, value := range overrides {
		require.NoError(t, reg.Set(flags.Global, name, value))
	}
	return validate.New(reg)
}

// mustText constructs a Text on an isolated default-policy engine.
func mustText(t *testing.T, text, lang string) *langtext.Text {
	t.Helper()
	entity, err := langtext.NewWith(newEngine(t, nil), text, lang)
	require.NoError(t, err)
	return entity
}

/*
TestText_EmptinessPolicy checks DEFINED_TEXT both on (default) and off.
*/
func TestText_EmptinessPolicy(t *testing.T) {
	t.Run("empty_text_rejected_by_default", func(t *testing.T) {
		_, err := langtext.NewWith(newEngine(t, nil), "", "en")
		require.Error(t, err)
		assert.True(t, langerr.IsValue(err))
	})

	t.Run("empty_text_allowed_when_flag_off", func(t *testing.T) {
		eng := newEngine(t, map[flags.Name]bool{flags.DefinedText: false})
		entity, err := langtext.NewWith(eng, "", "en")
		require.NoError(t, err)
		assert.Equal(t, "", entity.Value())
	})

	t.Run("empty_lang_means_unspecified", func(t *testing.T) {
		entity, err := langtext.NewWith(newEngine(t, nil), "Hello", "")
		require.NoError(t, err)
		assert.Equal(t, "", entity.Lang())
	})
}

/*
TestText_Setters verifies re-validation and no partial mutation on failure.
*/
func TestText_Setters(t *testing.T) {
	entity := mustText(t, "Hello", "en")

	require.NoError(t, entity.SetValue("Bonjour"))
	require.NoError(t, entity.SetLang("fr"))
	assert.Equal(t, "Bonjour", entity.Value())
	assert.Equal(t, "fr", entity.Lang())

	// Empty text violates DEFINED_TEXT; the entity must keep its last-valid state
	err := entity.SetValue("")
	require.Error(t, err)
	assert.Equal(t, "Bonjour", entity.Value())
}

/*
TestText_Equality covers case-folded language comparison and hashing.
*/
func TestText_Equality(t *testing.T) {
	hello := mustText(t, "Hello", "en")

	tests := []struct {
		name  string
		other *langtext.Text
		equal bool
	}{
		{"identical", mustText(t, "Hello", "en"), true},
		{"lang_casing_differs", mustText(t, "Hello", "EN"), true},
		{"different_text", mustText(t, "Howdy", "en"), false},
		{"different_lang", mustText(t, "Hello", "fr"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, hello.Equal(tt.other))
			if tt.other != nil {
				assert.Equal(t, tt.equal, hello.Hash() == tt.other.Hash())
			}
		})
	}

	assert.True(t, hello.EqualString("Hello"))
	assert.False(t, hello.EqualString("hello"))
}

/*
TestText_Ordering verifies comparisons work within a language and fail across
languages.
*/
func TestText_Ordering(t *testing.T) {
	apple := mustText(t, "apple", "en")
	banana := mustText(t, "banana", "EN") // casing irrelevant for ordering

	less, err := apple.Less(banana)
	require.NoError(t, err)
	assert.True(t, less)

	ge, err := banana.GreaterEqual(apple)
	require.NoError(t, err)
	assert.True(t, ge)

	_, err = apple.Compare(mustText(t, "pomme", "fr"))
	require.Error(t, err)
	assert.True(t, langerr.IsValue(err))

	// Raw strings carry no language tag, so comparison always succeeds
	assert.Negative(t, apple.CompareString("banana"))
	assert.Zero(t, apple.CompareString("apple"))
}

/*
TestText_Algebra verifies derived entities carry the language tag.
*/
func TestText_Algebra(t *testing.T) {
	entity := mustText(t, "hello world", "en")

	t.Run("concat_same_lang", func(t *testing.T) {
		out, err := entity.Concat(mustText(t, "!", "EN"))
		require.NoError(t, err)
		assert.Equal(t, "hello world!", out.Value())
		assert.Equal(t, "en", out.Lang())
	})

	t.Run("concat_lang_mismatch", func(t *testing.T) {
		_, err := entity.Concat(mustText(t, "!", "fr"))
		assert.True(t, langerr.IsValue(err))
	})

	t.Run("concat_raw_string", func(t *testing.T) {
		out, err := entity.ConcatString("!")
		require.NoError(t, err)
		assert.Equal(t, "hello world!", out.Value())
		assert.Equal(t, "en", out.Lang())
	})

	t.Run("case_transforms", func(t *testing.T) {
		upper, err := entity.Upper()
		require.NoError(t, err)
		assert.Equal(t, "HELLO WORLD", upper.Value())
		assert.Equal(t, "en", upper.Lang())

		lower, err := upper.Lower()
		require.NoError(t, err)
		assert.Equal(t, "hello world", lower.Value())

		title, err := entity.Title()
		require.NoError(t, err)
		assert.Equal(t, "Hello World", title.Value())
	})

	t.Run("split_pieces_keep_lang", func(t *testing.T) {
		pieces, err := entity.Split(" ")
		require.NoError(t, err)
		require.Len(t, pieces, 2)
		assert.Equal(t, "hello", pieces[0].Value())
		assert.Equal(t, "world", pieces[1].Value())
		for _, piece := range pieces {
			assert.Equal(t, "en", piece.Lang())
		}
	})

	t.Run("fields", func(t *testing.T) {
		pieces, err := mustText(t, "  a  b  ", "en").Fields()
		require.NoError(t, err)
		require.Len(t, pieces, 2)
		assert.Equal(t, "a", pieces[0].Value())
	})

	t.Run("join_requires_same_lang", func(t *testing.T) {
		sep := mustText(t, ", ", "en")
		out, err := sep.Join([]*langtext.Text{mustText(t, "a", "en"), mustText(t, "b", "EN")})
		require.NoError(t, err)
		assert.Equal(t, "a, b", out.Value())

		_, err = sep.Join([]*langtext.Text{mustText(t, "a", "fr")})
		assert.True(t, langerr.IsValue(err))
	})

	t.Run("slice_is_rune_based", func(t *testing.T) {
		out, err := mustText(t, "héllo", "fr").Slice(1, 3)
		require.NoError(t, err)
		assert.Equal(t, "él", out.Value())
		assert.Equal(t, "fr", out.Lang())
	})

	t.Run("pad_and_center", func(t *testing.T) {
		padded, err := mustText(t, "hi", "en").PadLeft(4, '*')
		require.NoError(t, err)
		assert.Equal(t, "**hi", padded.Value())

		padded, err = mustText(t, "hi", "en").PadRight(4, '*')
		require.NoError(t, err)
		assert.Equal(t, "hi**", padded.Value())

		centered, err := mustText(t, "hi", "en").Center(5, '*')
		require.NoError(t, err)
		assert.Equal(t, "*hi**", centered.Value())
	})

	t.Run("cut_prefix_suffix", func(t *testing.T) {
		out, err := entity.CutPrefix("hello ")
		require.NoError(t, err)
		assert.Equal(t, "world", out.Value())

		out, err = entity.CutSuffix(" world")
		require.NoError(t, err)
		assert.Equal(t, "hello", out.Value())

		// Absent prefix leaves the value unchanged
		out, err = entity.CutPrefix("xyz")
		require.NoError(t, err)
		assert.Equal(t, "hello world", out.Value())
	})

	t.Run("replace_repeat_format", func(t *testing.T) {
		out, err := entity.Replace("world", "there", -1)
		require.NoError(t, err)
		assert.Equal(t, "hello there", out.Value())

		out, err = mustText(t, "ab", "en").Repeat(3)
		require.NoError(t, err)
		assert.Equal(t, "ababab", out.Value())

		_, err = entity.Repeat(-1)
		assert.True(t, langerr.IsValue(err))

		out, err = mustText(t, "%s has %d items", "en").Format("cart", 3)
		require.NoError(t, err)
		assert.Equal(t, "cart has 3 items", out.Value())
	})

	t.Run("derived_values_revalidate", func(t *testing.T) {
		// Trimming everything yields empty text, which DEFINED_TEXT rejects
		_, err := mustText(t, "   ", "en").TrimSpace()
		require.Error(t, err)
		assert.True(t, langerr.IsValue(err))
	})
}

/*
TestText_Predicates spot-checks the non-allocating queries.
*/
func TestText_Predicates(t *testing.T) {
	entity := mustText(t, "hello world", "en")

	assert.True(t, entity.Contains("lo wo"))
	assert.True(t, entity.HasPrefix("hello"))
	assert.True(t, entity.HasSuffix("world"))
	assert.Equal(t, 4, entity.Index("o"))
	assert.Equal(t, 2, entity.Count("o"))
	assert.Equal(t, 11, entity.Len())
	assert.Equal(t, 5, mustText(t, "héllo", "fr").Len())
}

/*
TestText_Render verifies the canonical rendering shapes.
*/
func TestText_Render(t *testing.T) {
	entity := mustText(t, "Hello", "en")

	tests := []struct {
		name string
		opts []langtext.RenderOption
		want string
	}{
		{"policy_defaults", nil, `"Hello"@en`},
		{"without_lang", []langtext.RenderOption{langtext.WithLang(false)}, `"Hello"`},
		{"bare", []langtext.RenderOption{langtext.WithQuotes(false), langtext.WithLang(false)}, "Hello"},
		{"custom_separator", []langtext.RenderOption{langtext.WithSeparator("^^")}, `"Hello"^^en`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.Render(tt.opts...))
		})
	}

	t.Run("empty_lang_omits_suffix", func(t *testing.T) {
		assert.Equal(t, `"Hello"`, mustText(t, "Hello", "").Render())
	})

	t.Run("string_follows_policy_flags", func(t *testing.T) {
		eng := newEngine(t, map[flags.Name]bool{flags.PrintWithQuotes: false})
		entity, err := langtext.NewWith(eng, "Hello", "en")
		require.NoError(t, err)
		assert.Equal(t, "Hello@en", entity.String())
	})
}

/*
TestText_Normalization verifies flag-driven normalization at construction.
*/
func TestText_Normalization(t *testing.T) {
	eng := newEngine(t, map[flags.Name]bool{
		flags.StripText:     true,
		flags.StripLang:     true,
		flags.LowercaseLang: true,
	})

	entity, err := langtext.NewWith(eng, "  Hello  ", " EN-gb ")
	require.NoError(t, err)
	assert.Equal(t, "Hello", entity.Value())
	assert.Equal(t, "en-gb", entity.Lang())
}
