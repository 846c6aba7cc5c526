// Package vocab holds the synonym table that maps alias words to the
// canonical verbs and directions the engine understands. Tables are owned by
// a single game session and are passed by reference to whatever needs to
// resolve words; there is deliberately no package-level shared table.
package vocab

import (
	"strings"

	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/util"
)

// Class is the kind of word a vocabulary entry canonicalizes to.
type Class int

const (
	// Verb is the class of action words, such as "take" or "examine".
	Verb Class = iota

	// Direction is the class of movement words, such as "north".
	Direction
)

func (c Class) String() string {
	switch c {
	case Verb:
		return "verb"
	case Direction:
		return "direction"
	default:
		return "Class(?)"
	}
}

// ParseClass parses a string such as found in a definition file into a Class.
func ParseClass(s string) (Class, bool) {
	switch strings.ToLower(s) {
	case "verb":
		return Verb, true
	case "direction":
		return Direction, true
	default:
		return Verb, false
	}
}

// Entry is a single vocabulary mapping from some word to its canonical form.
type Entry struct {
	Canonical string
	Class     Class
}

// Table maps alias words to canonical verbs and directions. Every canonical
// word is present as its own trivial alias, so resolving a canonical form
// always succeeds. All lookups and registrations are case-insensitive.
//
// The zero value is not usable; create a Table with New.
type Table struct {
	entries map[string]Entry
}

// New creates a Table pre-seeded with the built-in vocabulary: an identity
// entry for every canonical verb and direction, plus the documented seed
// synonym groups (see seed.go).
func New() *Table {
	t := &Table{
		entries: make(map[string]Entry),
	}

	for _, grp := range seedGroups {
		t.AddCanonical(grp.canonical, grp.class)
		for _, alias := range grp.aliases {
			// seeds are statically known-good, so this cannot fail
			t.Register(alias, grp.canonical, grp.class)
		}
	}

	return t
}

// AddCanonical makes word a canonical member of the vocabulary by storing its
// identity entry. If word is already present, its entry is overwritten.
func (t *Table) AddCanonical(word string, class Class) {
	word = normalizeWord(word)
	if word == "" {
		return
	}
	t.entries[word] = Entry{Canonical: word, Class: class}
}

// Register stores or overwrites the mapping from alias to canonical. The
// canonical target must itself already be in the table; aliases never chain
// through unresolved words, so if canonical is currently an alias of some
// other word, the new entry is flattened to point directly at that word.
//
// Registering an alias that already exists overwrites it; the last
// registration wins and no history is kept.
//
// A non-nil error is returned only when the canonical target is unknown, and
// it is an InvalidAliasError.
func (t *Table) Register(alias, canonical string, class Class) error {
	alias = normalizeWord(alias)
	canonical = normalizeWord(canonical)

	target, ok := t.entries[canonical]
	if !ok {
		return perrors.InvalidAlias(alias, canonical)
	}

	t.entries[alias] = Entry{Canonical: target.Canonical, Class: class}
	return nil
}

// Resolve returns the canonical form of the given word. Words not in the
// table are returned unchanged (lowercased); a miss is not an error, since
// unresolved words are candidate nouns and adjectives to the pattern matcher.
func (t *Table) Resolve(word string) string {
	word = normalizeWord(word)
	if entry, ok := t.entries[word]; ok {
		return entry.Canonical
	}
	return word
}

// Lookup returns the entry for the given word and whether the word is in the
// table at all.
func (t *Table) Lookup(word string) (Entry, bool) {
	entry, ok := t.entries[normalizeWord(word)]
	return entry, ok
}

// Suggest finds the known word closest to the given input by edit distance.
// If the closest word is within maxDist edits, it is returned along with
// true; otherwise the empty string and false are returned. Ties are broken
// alphabetically so output is reproducible.
func (t *Table) Suggest(word string, maxDist int) (string, bool) {
	word = normalizeWord(word)

	best := ""
	bestDist := maxDist + 1

	for _, known := range util.OrderedKeys(t.entries) {
		d := util.EditDistance(word, known)
		if d < bestDist {
			best = known
			bestDist = d
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// Words returns every word in the table, canonical and alias alike, in
// alphabetical order.
func (t *Table) Words() []string {
	return util.OrderedKeys(t.entries)
}

// Entries returns a copy of the full alias-to-entry mapping.
func (t *Table) Entries() map[string]Entry {
	cp := make(map[string]Entry, len(t.entries))
	for k, v := range t.entries {
		cp[k] = v
	}
	return cp
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
