package parlance

import (
	"fmt"

	"github.com/maybell/parlance/internal/command"
	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/pwf"
	"github.com/maybell/parlance/internal/util"
	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

// Session is the command facade for one game: it owns a synonym table and a
// world model and composes them with the lexer and pattern matcher into a
// single Parse entry point.
//
// Sessions are independent of each other; a host running several games gives
// each its own Session and never shares tables or models across them. A
// Session is not safe for concurrent use, so a multi-threaded host must
// serialize access to it.
type Session struct {
	vocab *vocab.Table
	model *world.Model
}

// NewSession creates a Session with the built-in vocabulary and an empty
// world model.
func NewSession() *Session {
	return &Session{
		vocab: vocab.New(),
		model: world.NewModel(),
	}
}

// Parse parses one line of player input into a structured Command. On
// failure the returned error is one of the typed failures in the perrors
// package; all of them are recoverable and the Session remains usable.
func (s *Session) Parse(text string) (command.Command, error) {
	tokens := command.Normalize(text)
	return command.Match(text, tokens, s.vocab, s.model)
}

// Teach registers alias as a synonym of the given canonical word, which must
// already be known to the session's vocabulary. Teaching the same alias again
// overwrites the earlier lesson.
func (s *Session) Teach(alias, canonical string) error {
	target, ok := s.vocab.Lookup(canonical)
	if !ok {
		return perrors.InvalidAlias(alias, canonical)
	}
	return s.vocab.Register(alias, canonical, target.Class)
}

// World returns the session's world model, for direct mutation and query by
// game logic.
func (s *Session) World() *world.Model {
	return s.model
}

// Vocabulary returns the session's synonym table.
func (s *Session) Vocabulary() *vocab.Table {
	return s.vocab
}

// ApplyDefinition applies the content of a loaded definition file to the
// session: new vocabulary is registered and world objects and relations are
// asserted. Applying on top of existing state overwrites where ids collide,
// same as making the calls by hand.
func (s *Session) ApplyDefinition(def pwf.Definition) error {
	for _, grp := range def.Vocab {
		s.vocab.AddCanonical(grp.Canonical, grp.Class)
		for _, alias := range grp.Aliases {
			if err := s.vocab.Register(alias, grp.Canonical, grp.Class); err != nil {
				return fmt.Errorf("vocab %q: %w", grp.Canonical, err)
			}
		}
	}

	for _, obj := range def.Objects {
		if obj.Kind != "" {
			s.model.SetKind(obj.ID, obj.Kind)
		}
		for _, name := range util.OrderedKeys(obj.Properties) {
			s.model.SetProperty(obj.ID, name, obj.Properties[name])
		}
	}

	for _, t := range def.Relations {
		s.model.Relate(t.Name, t.Subject, t.Object)
	}

	return nil
}
