package command

import (
	"strings"

	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

// Prepositions is the closed set of joining words recognized between a
// direct and indirect object. These are reserved; an object literally named
// "with" is not addressable in a command.
var Prepositions = map[string]bool{
	"in":    true,
	"on":    true,
	"with":  true,
	"into":  true,
	"onto":  true,
	"from":  true,
	"to":    true,
	"under": true,
	"at":    true,
}

// maxSuggestDistance is how many edits away a vocabulary word may be and
// still be offered as a suggestion for an unknown verb.
const maxSuggestDistance = 2

// Match matches the given normalized tokens against the grammar shapes and
// produces a structured Command. The raw argument is carried through
// unmodified into the result's RawInput.
//
// The synonym table canonicalizes the leading verb; the world model is
// consulted for noun classification and adjective disambiguation. Neither is
// mutated.
//
// On failure the returned error is one of the types in the perrors package:
// EmptyCommandError when there are no tokens, UnknownVerbError (possibly
// carrying a suggestion) when the first token is not a known verb or
// direction, or MalformedCommandError when the remaining tokens fit no shape.
func Match(raw string, tokens []string, vt *vocab.Table, model *world.Model) (Command, error) {
	var cmd Command

	if len(tokens) < 1 {
		return cmd, perrors.EmptyCommand()
	}

	// the first token must resolve through the synonym table; there are no
	// partial matches on an unrecognized leading word
	entry, known := vt.Lookup(tokens[0])
	if !known {
		suggestion, _ := vt.Suggest(tokens[0], maxSuggestDistance)
		return cmd, perrors.UnknownVerb(tokens[0], suggestion)
	}

	cmd.Verb = entry.Canonical
	cmd.RawInput = raw
	cmd.Pattern = VerbAlone

	rest := tokens[1:]
	if len(rest) == 0 {
		return cmd, nil
	}

	// find the preposition, if any; a second one fits no shape
	prepAt := -1
	for i, tok := range rest {
		if !Prepositions[tok] {
			continue
		}
		if prepAt >= 0 {
			return cmd, perrors.MalformedCommand(i+1, "second preposition %q", tok)
		}
		prepAt = i
	}

	if prepAt >= 0 {
		return matchWithPreposition(cmd, rest, prepAt, model)
	}

	if len(rest) == 1 {
		cmd.Pattern = VerbNoun
		cmd.DirectObject = rest[0]
		return cmd, nil
	}

	// two nouns side by side is the direct-then-indirect shape ("give guard
	// key"); it only applies when the leading token is itself a known noun,
	// otherwise the leading tokens are adjectives
	if len(rest) == 2 && isKnownNoun(model, rest[0]) {
		cmd.Pattern = VerbNounNoun
		cmd.DirectObject = rest[0]
		cmd.IndirectObject = rest[1]
		return cmd, nil
	}

	adjectives, noun := splitNounGroup(rest)
	cmd.Pattern = VerbAdjectiveNoun
	cmd.Adjectives = adjectives
	cmd.DirectObject = disambiguate(model, noun, adjectives)
	return cmd, nil
}

// matchWithPreposition handles the two preposition-bearing shapes. prepAt is
// the preposition's index within rest; rest is everything after the verb.
func matchWithPreposition(cmd Command, rest []string, prepAt int, model *world.Model) (Command, error) {
	if prepAt == len(rest)-1 {
		return cmd, perrors.MalformedCommand(prepAt+1, "preposition %q has nothing after it", rest[prepAt])
	}
	if Prepositions[rest[prepAt+1]] {
		// cannot happen today since the caller rejects double prepositions,
		// but the shape check is cheap and keeps this func self-contained
		return cmd, perrors.MalformedCommand(prepAt+2, "preposition %q directly follows %q", rest[prepAt+1], rest[prepAt])
	}

	cmd.Preposition = rest[prepAt]
	indirectAdjectives, indirectNoun := splitNounGroup(rest[prepAt+1:])

	if prepAt == 0 {
		// no object before the preposition: "look at statue"
		cmd.Pattern = VerbPrepNoun
		cmd.Adjectives = indirectAdjectives
		cmd.IndirectObject = indirectNoun
		return cmd, nil
	}

	directAdjectives, directNoun := splitNounGroup(rest[:prepAt])
	cmd.Pattern = VerbNounPrepNoun
	cmd.Adjectives = directAdjectives
	cmd.DirectObject = disambiguate(model, directNoun, directAdjectives)
	cmd.IndirectObject = indirectNoun
	return cmd, nil
}

// splitNounGroup splits one noun group into its adjective run and its noun.
// Multi-word nouns are not supported: the noun is always the final token, and
// everything before it is an adjective.
func splitNounGroup(group []string) (adjectives []string, noun string) {
	if len(group) == 0 {
		return nil, ""
	}
	if len(group) > 1 {
		adjectives = append(adjectives, group[:len(group)-1]...)
	}
	return adjectives, group[len(group)-1]
}

// isKnownNoun reports whether the world model can resolve the token as an
// object: either an object identifier, or the kind shared by one or more
// objects.
func isKnownNoun(model *world.Model, token string) bool {
	if model == nil {
		return false
	}
	if model.HasObject(token) {
		return true
	}
	return len(model.ObjectsOfKind(token)) > 0
}

// disambiguate narrows a literal noun to a single world-object identifier
// using the supplied adjectives. When several objects share the noun as
// their kind, the one whose properties match every adjective is substituted.
// With zero or several matches the literal noun passes through unchanged and
// narrowing is the calling engine's problem; failing to narrow is not a parse
// failure.
func disambiguate(model *world.Model, noun string, adjectives []string) string {
	if model == nil || len(adjectives) == 0 {
		return noun
	}

	candidates := model.ObjectsOfKind(noun)
	if len(candidates) < 2 {
		return noun
	}

	var matches []string
	for _, id := range candidates {
		if hasAdjectives(model, id, adjectives) {
			matches = append(matches, id)
		}
	}

	if len(matches) == 1 {
		return matches[0]
	}
	return noun
}

// hasAdjectives reports whether the object matches every one of the given
// adjective words. A word matches if the object has a truthy property of the
// same name, or if the word appears in the object's "adjectives" tag
// property.
func hasAdjectives(model *world.Model, id string, adjectives []string) bool {
	for _, adj := range adjectives {
		if v, ok := model.Property(id, adj); ok && v.Bool() {
			continue
		}
		if tags, ok := model.Property(id, "adjectives"); ok && containsWord(tags.Str(), adj) {
			continue
		}
		return false
	}
	return true
}

func containsWord(tags, word string) bool {
	for _, field := range strings.Fields(tags) {
		if field == word {
			return true
		}
	}
	return false
}
