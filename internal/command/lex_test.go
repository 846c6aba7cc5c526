package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Normalize(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "blank string",
			input:  "",
			expect: nil,
		},
		{
			name:   "whitespace only",
			input:  "   \t  ",
			expect: nil,
		},
		{
			name:   "single word",
			input:  "inventory",
			expect: []string{"inventory"},
		},
		{
			name:   "lowercases input",
			input:  "TAKE Sword",
			expect: []string{"take", "sword"},
		},
		{
			name:   "drops standalone articles",
			input:  "take the sword",
			expect: []string{"take", "sword"},
		},
		{
			name:   "drops all three articles",
			input:  "put a key in an old chest under the rug",
			expect: []string{"put", "key", "in", "old", "chest", "under", "rug"},
		},
		{
			name:   "article-only input yields no tokens",
			input:  "the a an",
			expect: nil,
		},
		{
			name:   "trims trailing punctuation",
			input:  "take sword!",
			expect: []string{"take", "sword"},
		},
		{
			name:   "trims surrounding punctuation",
			input:  "take 'sword,'",
			expect: []string{"take", "sword"},
		},
		{
			name:   "keeps interior punctuation",
			input:  "let's go",
			expect: []string{"let's", "go"},
		},
		{
			name:   "pure punctuation token survives",
			input:  "?",
			expect: []string{"?"},
		},
		{
			name:   "collapses runs of whitespace",
			input:  "take   red \t sword",
			expect: []string{"take", "red", "sword"},
		},
		{
			name:   "article prefix of a word is kept",
			input:  "take then go",
			expect: []string{"take", "then", "go"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Normalize(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}
