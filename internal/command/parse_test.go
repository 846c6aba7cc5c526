package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

// parseFixture runs input through Normalize and Match with the built-in
// vocabulary and the given model.
func parseFixture(input string, model *world.Model) (Command, error) {
	vt := vocab.New()
	tokens := Normalize(input)
	return Match(input, tokens, vt, model)
}

func swordsModel() *world.Model {
	m := world.NewModel()
	m.SetKind("sword1", "sword")
	m.SetProperty("sword1", "red", world.NewBool(true))
	m.SetKind("sword2", "sword")
	m.SetProperty("sword2", "adjectives", world.NewStr("rusty old"))
	return m
}

func Test_Match_shapes(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect Command
	}{
		{
			name:  "bare verb",
			input: "inventory",
			expect: Command{
				Verb:     "inventory",
				Pattern:  VerbAlone,
				RawInput: "inventory",
			},
		},
		{
			name:  "bare verb through alias",
			input: "i",
			expect: Command{
				Verb:     "inventory",
				Pattern:  VerbAlone,
				RawInput: "i",
			},
		},
		{
			name:  "bare direction",
			input: "north",
			expect: Command{
				Verb:     "north",
				Pattern:  VerbAlone,
				RawInput: "north",
			},
		},
		{
			name:  "direction shorthand",
			input: "n",
			expect: Command{
				Verb:     "north",
				Pattern:  VerbAlone,
				RawInput: "n",
			},
		},
		{
			name:  "verb and noun",
			input: "take sword",
			expect: Command{
				Verb:         "take",
				DirectObject: "sword",
				Pattern:      VerbNoun,
				RawInput:     "take sword",
			},
		},
		{
			name:  "verb alias resolves",
			input: "grab sword",
			expect: Command{
				Verb:         "take",
				DirectObject: "sword",
				Pattern:      VerbNoun,
				RawInput:     "grab sword",
			},
		},
		{
			name:  "single-letter examine alias",
			input: "x statue",
			expect: Command{
				Verb:         "examine",
				DirectObject: "statue",
				Pattern:      VerbNoun,
				RawInput:     "x statue",
			},
		},
		{
			name:  "article is dropped before matching",
			input: "take the sword",
			expect: Command{
				Verb:         "take",
				DirectObject: "sword",
				Pattern:      VerbNoun,
				RawInput:     "take the sword",
			},
		},
		{
			name:  "adjective and noun",
			input: "take red sword",
			expect: Command{
				Verb:         "take",
				DirectObject: "sword",
				Adjectives:   []string{"red"},
				Pattern:      VerbAdjectiveNoun,
				RawInput:     "take red sword",
			},
		},
		{
			name:  "multiple adjectives",
			input: "take big old rusty sword",
			expect: Command{
				Verb:         "take",
				DirectObject: "sword",
				Adjectives:   []string{"big", "old", "rusty"},
				Pattern:      VerbAdjectiveNoun,
				RawInput:     "take big old rusty sword",
			},
		},
		{
			name:  "preposition leads the object",
			input: "look at statue",
			expect: Command{
				Verb:           "examine",
				IndirectObject: "statue",
				Preposition:    "at",
				Pattern:        VerbPrepNoun,
				RawInput:       "look at statue",
			},
		},
		{
			name:  "preposition-led object with adjective",
			input: "look at old statue",
			expect: Command{
				Verb:           "examine",
				IndirectObject: "statue",
				Adjectives:     []string{"old"},
				Preposition:    "at",
				Pattern:        VerbPrepNoun,
				RawInput:       "look at old statue",
			},
		},
		{
			name:  "direct and indirect object",
			input: "put sword in bag",
			expect: Command{
				Verb:           "put",
				DirectObject:   "sword",
				IndirectObject: "bag",
				Preposition:    "in",
				Pattern:        VerbNounPrepNoun,
				RawInput:       "put sword in bag",
			},
		},
		{
			name:  "direct object with adjectives and indirect object",
			input: "put small brass key into lock",
			expect: Command{
				Verb:           "put",
				DirectObject:   "key",
				IndirectObject: "lock",
				Adjectives:     []string{"small", "brass"},
				Preposition:    "into",
				Pattern:        VerbNounPrepNoun,
				RawInput:       "put small brass key into lock",
			},
		},
		{
			name:  "indirect object adjectives attach to the noun",
			input: "put sword in leather bag",
			expect: Command{
				Verb:           "put",
				DirectObject:   "sword",
				IndirectObject: "bag",
				Preposition:    "in",
				Pattern:        VerbNounPrepNoun,
				RawInput:       "put sword in leather bag",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := parseFixture(tc.input, world.NewModel())
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Match_errors(t *testing.T) {
	t.Run("no tokens is an empty command", func(t *testing.T) {
		assert := assert.New(t)

		_, err := parseFixture("   ", world.NewModel())

		var emptyErr *perrors.EmptyCommandError
		assert.ErrorAs(err, &emptyErr)
	})

	t.Run("unknown verb", func(t *testing.T) {
		assert := assert.New(t)

		_, err := parseFixture("plugh sword", world.NewModel())

		var uvErr *perrors.UnknownVerbError
		if assert.ErrorAs(err, &uvErr) {
			assert.Equal("plugh", uvErr.Word)
		}
	})

	t.Run("unknown verb with close match carries a suggestion", func(t *testing.T) {
		assert := assert.New(t)

		_, err := parseFixture("tkae sword", world.NewModel())

		var uvErr *perrors.UnknownVerbError
		if assert.ErrorAs(err, &uvErr) {
			assert.Equal("tkae", uvErr.Word)
			assert.Equal("take", uvErr.Suggestion)
		}
	})

	t.Run("noun is never promoted to verb", func(t *testing.T) {
		assert := assert.New(t)

		// "sword take" must not match any shape by reordering
		_, err := parseFixture("sword take", world.NewModel())

		var uvErr *perrors.UnknownVerbError
		if assert.ErrorAs(err, &uvErr) {
			assert.Equal("sword", uvErr.Word)
		}
	})

	t.Run("trailing preposition", func(t *testing.T) {
		assert := assert.New(t)

		_, err := parseFixture("put sword in", world.NewModel())

		var mcErr *perrors.MalformedCommandError
		if assert.ErrorAs(err, &mcErr) {
			assert.Equal(2, mcErr.Index)
		}
	})

	t.Run("bare preposition after verb", func(t *testing.T) {
		assert := assert.New(t)

		_, err := parseFixture("look at", world.NewModel())

		var mcErr *perrors.MalformedCommandError
		if assert.ErrorAs(err, &mcErr) {
			assert.Equal(1, mcErr.Index)
		}
	})

	t.Run("two prepositions", func(t *testing.T) {
		assert := assert.New(t)

		_, err := parseFixture("put sword in on bag", world.NewModel())

		var mcErr *perrors.MalformedCommandError
		if assert.ErrorAs(err, &mcErr) {
			assert.Equal(3, mcErr.Index)
		}
	})
}

func Test_Match_verbNounNoun(t *testing.T) {
	t.Run("matches when the first noun is known", func(t *testing.T) {
		assert := assert.New(t)

		m := world.NewModel()
		m.SetKind("guard", "person")

		actual, err := parseFixture("give guard key", m)
		if !assert.NoError(err) {
			return
		}

		assert.Equal(VerbNounNoun, actual.Pattern)
		assert.Equal("give", actual.Verb)
		assert.Equal("guard", actual.DirectObject)
		assert.Equal("key", actual.IndirectObject)
	})

	t.Run("first noun known only by kind", func(t *testing.T) {
		assert := assert.New(t)

		m := world.NewModel()
		m.SetKind("guard1", "guard")

		actual, err := parseFixture("give guard key", m)
		if !assert.NoError(err) {
			return
		}

		assert.Equal(VerbNounNoun, actual.Pattern)
		assert.Equal("guard", actual.DirectObject)
		assert.Equal("key", actual.IndirectObject)
	})

	t.Run("unknown first noun reads as adjective", func(t *testing.T) {
		assert := assert.New(t)

		actual, err := parseFixture("give guard key", world.NewModel())
		if !assert.NoError(err) {
			return
		}

		assert.Equal(VerbAdjectiveNoun, actual.Pattern)
		assert.Equal("key", actual.DirectObject)
		assert.Equal([]string{"guard"}, actual.Adjectives)
		assert.Zero(actual.IndirectObject)
	})
}

func Test_Match_disambiguation(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		model        *world.Model
		expectDirect string
	}{
		{
			name:         "boolean property narrows to one object",
			input:        "take red sword",
			model:        swordsModel(),
			expectDirect: "sword1",
		},
		{
			name:         "adjectives tag narrows to one object",
			input:        "take rusty sword",
			model:        swordsModel(),
			expectDirect: "sword2",
		},
		{
			name:         "no object matches",
			input:        "take shiny sword",
			model:        swordsModel(),
			expectDirect: "sword",
		},
		{
			name:         "no single object matches every adjective",
			input:        "take red rusty sword",
			model:        swordsModel(),
			expectDirect: "sword",
		},
		{
			name:  "several objects match",
			input: "take red sword",
			model: func() *world.Model {
				m := swordsModel()
				m.SetProperty("sword2", "red", world.NewBool(true))
				return m
			}(),
			expectDirect: "sword",
		},
		{
			name:  "lone candidate passes through literally",
			input: "take red sword",
			model: func() *world.Model {
				m := world.NewModel()
				m.SetKind("sword1", "sword")
				m.SetProperty("sword1", "red", world.NewBool(true))
				return m
			}(),
			expectDirect: "sword",
		},
		{
			name:  "false boolean property does not match",
			input: "take red sword",
			model: func() *world.Model {
				m := swordsModel()
				m.SetProperty("sword1", "red", world.NewBool(false))
				return m
			}(),
			expectDirect: "sword",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := parseFixture(tc.input, tc.model)
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expectDirect, actual.DirectObject)
		})
	}

	t.Run("also narrows before a preposition", func(t *testing.T) {
		assert := assert.New(t)

		actual, err := parseFixture("put red sword in bag", swordsModel())
		if !assert.NoError(err) {
			return
		}

		assert.Equal(VerbNounPrepNoun, actual.Pattern)
		assert.Equal("sword1", actual.DirectObject)
		assert.Equal("bag", actual.IndirectObject)
	})
}
