// Package command defines the structured command type produced from player
// input and handles turning free text into it: normalizing raw input into
// tokens and matching the tokens against the fixed set of grammar shapes.
package command

// Pattern identifies which grammar shape a command matched. The set of shapes
// is closed; there is deliberately no configurable grammar.
type Pattern int

const (
	// VerbAlone is a bare verb or direction, such as "inventory" or "north".
	VerbAlone Pattern = iota

	// VerbNoun is a verb with a single object, such as "take sword".
	VerbNoun

	// VerbAdjectiveNoun is a verb with an object qualified by one or more
	// adjectives, such as "take red sword".
	VerbAdjectiveNoun

	// VerbPrepNoun is a verb whose object is introduced by a preposition,
	// such as "look at statue".
	VerbPrepNoun

	// VerbNounPrepNoun is a verb with a direct object and an indirect object
	// joined by a preposition, such as "put sword in bag".
	VerbNounPrepNoun

	// VerbNounNoun is a verb with a direct object immediately followed by an
	// indirect object, such as "give guard key".
	VerbNounNoun
)

func (p Pattern) String() string {
	switch p {
	case VerbAlone:
		return "VERB_ALONE"
	case VerbNoun:
		return "VERB_NOUN"
	case VerbAdjectiveNoun:
		return "VERB_ADJECTIVE_NOUN"
	case VerbPrepNoun:
		return "VERB_PREP_NOUN"
	case VerbNounPrepNoun:
		return "VERB_NOUN_PREP_NOUN"
	case VerbNounNoun:
		return "VERB_NOUN_NOUN"
	default:
		return "Pattern(?)"
	}
}

// Command is a single parsed player command. Values are immutable once
// returned from Match; callers receive their own copy.
type Command struct {

	// Verb is the canonical name of the action being invoked, such as "take"
	// or "examine". Shorthand and synonym forms are already resolved, so
	// typing "x statue" and "examine statue" both produce a Verb of
	// "examine". For bare movement commands the Verb is the canonical
	// direction itself, such as "north".
	Verb string `json:"verb"`

	// DirectObject is the thing the action applies to, for instance "sword"
	// in "take sword". When adjective disambiguation narrows the noun to
	// exactly one world object, this holds that object's identifier instead
	// of the literal noun.
	DirectObject string `json:"direct_object,omitempty"`

	// IndirectObject is the secondary object of the action: "bag" in "put
	// sword in bag", "key" in "give guard key", or the sole object of a
	// preposition-led command such as "look at statue".
	IndirectObject string `json:"indirect_object,omitempty"`

	// Adjectives are the modifiers that qualified the object noun, in the
	// order they were typed.
	Adjectives []string `json:"adjectives,omitempty"`

	// Preposition is the joining word of preposition-bearing shapes, one of
	// the closed preposition set. It is non-empty exactly when the pattern
	// is VerbPrepNoun or VerbNounPrepNoun, and in both cases IndirectObject
	// is non-empty too.
	Preposition string `json:"preposition,omitempty"`

	// Pattern is the grammar shape the command matched.
	Pattern Pattern `json:"pattern"`

	// RawInput is the input text the command was parsed from, unmodified.
	RawInput string `json:"raw_input"`
}
