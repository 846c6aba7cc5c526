// Package perrors defines the typed failures that command interpretation can
// produce. Every error here is recoverable at the parse-call boundary; none is
// fatal to the process.
//
// Each error carries two messages: a technical one returned by Error(), and a
// human-readable one intended to be shown at a game prompt, retrieved with
// GameMessage.
package perrors

import (
	"errors"
	"fmt"
)

// EmptyCommandError is the error produced when input normalizes down to no
// tokens at all.
type EmptyCommandError struct{}

func (e *EmptyCommandError) Error() string {
	return "empty command"
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *EmptyCommandError) GameMessage() string {
	return "Say something first"
}

// EmptyCommand returns a new EmptyCommandError.
func EmptyCommand() error {
	return &EmptyCommandError{}
}

// UnknownVerbError is the error produced when the first word of a command does
// not resolve to any canonical verb or direction. Suggestion, if non-empty, is
// a known word close enough to the input that the player probably meant it; it
// is advisory only and is never automatically substituted.
type UnknownVerbError struct {
	Word       string
	Suggestion string
}

func (e *UnknownVerbError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown verb %q (did you mean %q?)", e.Word, e.Suggestion)
	}
	return fmt.Sprintf("unknown verb %q", e.Word)
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *UnknownVerbError) GameMessage() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("I don't know how to %q; did you mean %q?", e.Word, e.Suggestion)
	}
	return fmt.Sprintf("I don't know how to %q", e.Word)
}

// UnknownVerb returns a new UnknownVerbError for the given word. The
// suggestion may be empty if no close candidate exists.
func UnknownVerb(word, suggestion string) error {
	return &UnknownVerbError{Word: word, Suggestion: suggestion}
}

// MalformedCommandError is the error produced when the tokens after the verb
// do not fit any recognized grammar shape. Index is the position of the
// offending token within the normalized token sequence.
type MalformedCommandError struct {
	Index  int
	Reason string
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("malformed command at token %d: %s", e.Index, e.Reason)
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *MalformedCommandError) GameMessage() string {
	return "I can't make sense of that"
}

// MalformedCommand returns a new MalformedCommandError identifying the
// offending token index. The reason may use format args.
func MalformedCommand(index int, reasonFormat string, a ...interface{}) error {
	return &MalformedCommandError{Index: index, Reason: fmt.Sprintf(reasonFormat, a...)}
}

// InvalidAliasError is the error produced when a teach call names a canonical
// target that is itself unknown; aliases never chain through unresolved words.
type InvalidAliasError struct {
	Alias     string
	Canonical string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("cannot alias %q to %q: %q is not a known word", e.Alias, e.Canonical, e.Canonical)
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *InvalidAliasError) GameMessage() string {
	return fmt.Sprintf("I don't know the word %q myself, so I can't teach it", e.Canonical)
}

// InvalidAlias returns a new InvalidAliasError.
func InvalidAlias(alias, canonical string) error {
	return &InvalidAliasError{Alias: alias, Canonical: canonical}
}

// GameMessage gets the message to display at the game prompt for the given
// error. If it is one of the types defined in perrors, the special game
// message is returned. Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	type gameMessager interface {
		GameMessage() string
	}

	var gm gameMessager
	if errors.As(err, &gm) {
		return gm.GameMessage()
	}
	return err.Error()
}

// SuggestionFor returns the suggestion attached to err if it is an
// UnknownVerbError carrying one, else the empty string.
func SuggestionFor(err error) string {
	var uvErr *UnknownVerbError
	if errors.As(err, &uvErr) {
		return uvErr.Suggestion
	}
	return ""
}

// TokenIndex returns the offending token index attached to err if it is a
// MalformedCommandError, else -1.
func TokenIndex(err error) int {
	var mcErr *MalformedCommandError
	if errors.As(err, &mcErr) {
		return mcErr.Index
	}
	return -1
}
