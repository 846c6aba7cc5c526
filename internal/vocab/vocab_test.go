package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maybell/parlance/internal/perrors"
)

func Test_New_seedVocabulary(t *testing.T) {
	testCases := []struct {
		name   string
		word   string
		expect Entry
	}{
		{
			name:   "canonical verb resolves to itself",
			word:   "take",
			expect: Entry{Canonical: "take", Class: Verb},
		},
		{
			name:   "verb alias",
			word:   "grab",
			expect: Entry{Canonical: "take", Class: Verb},
		},
		{
			name:   "single-letter examine alias",
			word:   "x",
			expect: Entry{Canonical: "examine", Class: Verb},
		},
		{
			name:   "look is examine",
			word:   "look",
			expect: Entry{Canonical: "examine", Class: Verb},
		},
		{
			name:   "question mark is help",
			word:   "?",
			expect: Entry{Canonical: "help", Class: Verb},
		},
		{
			name:   "canonical direction",
			word:   "north",
			expect: Entry{Canonical: "north", Class: Direction},
		},
		{
			name:   "direction shorthand",
			word:   "n",
			expect: Entry{Canonical: "north", Class: Direction},
		},
		{
			name:   "lookup is case-insensitive",
			word:   "TAKE",
			expect: Entry{Canonical: "take", Class: Verb},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, ok := New().Lookup(tc.word)
			if !assert.True(ok) {
				return
			}

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Table_Register(t *testing.T) {
	t.Run("new alias resolves to the canonical form", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		err := vt.Register("steal", "take", Verb)

		assert.NoError(err)
		assert.Equal("take", vt.Resolve("steal"))
	})

	t.Run("aliasing through an alias flattens to the target", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		err := vt.Register("nab", "grab", Verb)

		assert.NoError(err)

		entry, ok := vt.Lookup("nab")
		if assert.True(ok) {
			assert.Equal("take", entry.Canonical)
		}
	})

	t.Run("re-registering an alias overwrites it", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		err := vt.Register("grab", "examine", Verb)

		assert.NoError(err)
		assert.Equal("examine", vt.Resolve("grab"))
	})

	t.Run("unknown canonical target is an error", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		err := vt.Register("florp", "blorbo", Verb)

		var iaErr *perrors.InvalidAliasError
		if assert.ErrorAs(err, &iaErr) {
			assert.Equal("florp", iaErr.Alias)
			assert.Equal("blorbo", iaErr.Canonical)
		}

		// the failed lesson must not have touched the table
		_, ok := vt.Lookup("florp")
		assert.False(ok)
	})

	t.Run("alias registration is case-insensitive", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		err := vt.Register("STEAL", "Take", Verb)

		assert.NoError(err)
		assert.Equal("take", vt.Resolve("steal"))
	})
}

func Test_Table_Resolve_miss(t *testing.T) {
	assert := assert.New(t)
	vt := New()

	// unknown words pass through so they can be treated as nouns
	assert.Equal("sword", vt.Resolve("sword"))
	assert.Equal("sword", vt.Resolve("SWORD"))
}

func Test_Table_AddCanonical(t *testing.T) {
	t.Run("new canonical word gets an identity entry", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		vt.AddCanonical("sing", Verb)

		entry, ok := vt.Lookup("sing")
		if assert.True(ok) {
			assert.Equal(Entry{Canonical: "sing", Class: Verb}, entry)
		}
	})

	t.Run("blank word is ignored", func(t *testing.T) {
		assert := assert.New(t)
		vt := New()

		vt.AddCanonical("   ", Verb)

		_, ok := vt.Lookup("")
		assert.False(ok)
	})
}

func Test_Table_Suggest(t *testing.T) {
	testCases := []struct {
		name      string
		word      string
		maxDist   int
		expect    string
		expectHit bool
	}{
		{
			name:      "transposition of a verb",
			word:      "tkae",
			maxDist:   2,
			expect:    "take",
			expectHit: true,
		},
		{
			name:      "single letter dropped",
			word:      "exmine",
			maxDist:   2,
			expect:    "examine",
			expectHit: true,
		},
		{
			name:      "nothing close enough",
			word:      "zzzzzzzzzz",
			maxDist:   2,
			expectHit: false,
		},
		{
			name:      "ties go to the alphabetically first word",
			word:      "dp",
			maxDist:   1,
			expect:    "d",
			expectHit: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, ok := New().Suggest(tc.word, tc.maxDist)

			assert.Equal(tc.expectHit, ok)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ParseClass(t *testing.T) {
	assert := assert.New(t)

	c, ok := ParseClass("verb")
	assert.True(ok)
	assert.Equal(Verb, c)

	c, ok = ParseClass("DIRECTION")
	assert.True(ok)
	assert.Equal(Direction, c)

	_, ok = ParseClass("noun")
	assert.False(ok)
}
