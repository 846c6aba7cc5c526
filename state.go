package parlance

import (
	"fmt"

	"github.com/dekarrin/rezi"
	"github.com/maybell/parlance/internal/util"
	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

// State is a snapshot of everything a Session accumulates over play: the
// full vocabulary including taught aliases, and the world model's kinds,
// properties, and relations. It implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler so hosts can persist sessions however they
// like; the core itself defines no storage.
type State struct {
	Vocabulary map[string]vocab.Entry
	Kinds      map[string]string
	Properties map[string]map[string]world.Value
	Relations  []world.Triple
}

// State captures a snapshot of the session. The snapshot is a deep copy;
// later session mutations do not affect it.
func (s *Session) State() State {
	st := State{
		Vocabulary: s.vocab.Entries(),
		Kinds:      make(map[string]string),
		Properties: make(map[string]map[string]world.Value),
		Relations:  s.model.Relations(),
	}

	for _, id := range s.model.Objects() {
		if kind, ok := s.model.Kind(id); ok {
			st.Kinds[id] = kind
		}
		if props := s.model.Properties(id); len(props) > 0 {
			st.Properties[id] = props
		}
	}

	return st
}

// NewSessionFromState creates a Session and restores the given snapshot into
// it.
func NewSessionFromState(st State) *Session {
	s := NewSession()

	// canonical (identity) entries must exist before aliases can point at
	// them
	for _, word := range util.OrderedKeys(st.Vocabulary) {
		entry := st.Vocabulary[word]
		if word == entry.Canonical {
			s.vocab.AddCanonical(word, entry.Class)
		}
	}
	for _, word := range util.OrderedKeys(st.Vocabulary) {
		entry := st.Vocabulary[word]
		if word != entry.Canonical {
			// target came from Entries() so it always exists; Register
			// cannot fail here
			s.vocab.Register(word, entry.Canonical, entry.Class)
		}
	}

	for _, id := range util.OrderedKeys(st.Kinds) {
		s.model.SetKind(id, st.Kinds[id])
	}
	for _, id := range util.OrderedKeys(st.Properties) {
		props := st.Properties[id]
		for _, name := range util.OrderedKeys(props) {
			s.model.SetProperty(id, name, props[name])
		}
	}
	for _, t := range st.Relations {
		s.model.Relate(t.Name, t.Subject, t.Object)
	}

	return s
}

// MarshalBinary converts the state into a slice of bytes that can be decoded
// with UnmarshalBinary. Map entries are written in sorted key order so the
// encoding of a given state is reproducible.
func (st State) MarshalBinary() ([]byte, error) {
	var data []byte

	data = append(data, rezi.EncInt(len(st.Vocabulary))...)
	for _, word := range util.OrderedKeys(st.Vocabulary) {
		entry := st.Vocabulary[word]
		data = append(data, rezi.EncString(word)...)
		data = append(data, rezi.EncString(entry.Canonical)...)
		data = append(data, rezi.EncInt(int(entry.Class))...)
	}

	data = append(data, rezi.EncInt(len(st.Kinds))...)
	for _, id := range util.OrderedKeys(st.Kinds) {
		data = append(data, rezi.EncString(id)...)
		data = append(data, rezi.EncString(st.Kinds[id])...)
	}

	data = append(data, rezi.EncInt(len(st.Properties))...)
	for _, id := range util.OrderedKeys(st.Properties) {
		props := st.Properties[id]
		data = append(data, rezi.EncString(id)...)
		data = append(data, rezi.EncInt(len(props))...)
		for _, name := range util.OrderedKeys(props) {
			data = append(data, rezi.EncString(name)...)
			data = append(data, encValue(props[name])...)
		}
	}

	data = append(data, rezi.EncInt(len(st.Relations))...)
	for _, t := range st.Relations {
		data = append(data, rezi.EncString(t.Name)...)
		data = append(data, rezi.EncString(t.Subject)...)
		data = append(data, rezi.EncString(t.Object)...)
	}

	return data, nil
}

// UnmarshalBinary decodes a slice of bytes produced by MarshalBinary into
// the receiver.
func (st *State) UnmarshalBinary(data []byte) error {
	var err error

	st.Vocabulary = make(map[string]vocab.Entry)
	st.Kinds = make(map[string]string)
	st.Properties = make(map[string]map[string]world.Value)
	st.Relations = nil

	var vocabCount int
	if vocabCount, data, err = decInt(data); err != nil {
		return fmt.Errorf("vocabulary count: %w", err)
	}
	for i := 0; i < vocabCount; i++ {
		var word, canonical string
		var class int
		if word, data, err = decString(data); err != nil {
			return fmt.Errorf("vocabulary[%d]: %w", i, err)
		}
		if canonical, data, err = decString(data); err != nil {
			return fmt.Errorf("vocabulary[%q]: %w", word, err)
		}
		if class, data, err = decInt(data); err != nil {
			return fmt.Errorf("vocabulary[%q]: %w", word, err)
		}
		st.Vocabulary[word] = vocab.Entry{Canonical: canonical, Class: vocab.Class(class)}
	}

	var kindCount int
	if kindCount, data, err = decInt(data); err != nil {
		return fmt.Errorf("kind count: %w", err)
	}
	for i := 0; i < kindCount; i++ {
		var id, kind string
		if id, data, err = decString(data); err != nil {
			return fmt.Errorf("kinds[%d]: %w", i, err)
		}
		if kind, data, err = decString(data); err != nil {
			return fmt.Errorf("kinds[%q]: %w", id, err)
		}
		st.Kinds[id] = kind
	}

	var objCount int
	if objCount, data, err = decInt(data); err != nil {
		return fmt.Errorf("object count: %w", err)
	}
	for i := 0; i < objCount; i++ {
		var id string
		var propCount int
		if id, data, err = decString(data); err != nil {
			return fmt.Errorf("properties[%d]: %w", i, err)
		}
		if propCount, data, err = decInt(data); err != nil {
			return fmt.Errorf("properties[%q]: %w", id, err)
		}
		props := make(map[string]world.Value, propCount)
		for j := 0; j < propCount; j++ {
			var name string
			var v world.Value
			if name, data, err = decString(data); err != nil {
				return fmt.Errorf("properties[%q]: %w", id, err)
			}
			if v, data, err = decValue(data); err != nil {
				return fmt.Errorf("properties[%q][%q]: %w", id, name, err)
			}
			props[name] = v
		}
		st.Properties[id] = props
	}

	var relCount int
	if relCount, data, err = decInt(data); err != nil {
		return fmt.Errorf("relation count: %w", err)
	}
	for i := 0; i < relCount; i++ {
		var t world.Triple
		if t.Name, data, err = decString(data); err != nil {
			return fmt.Errorf("relations[%d]: %w", i, err)
		}
		if t.Subject, data, err = decString(data); err != nil {
			return fmt.Errorf("relations[%d]: %w", i, err)
		}
		if t.Object, data, err = decString(data); err != nil {
			return fmt.Errorf("relations[%d]: %w", i, err)
		}
		st.Relations = append(st.Relations, t)
	}

	return nil
}

func encValue(v world.Value) []byte {
	data := rezi.EncInt(int(v.Type()))
	switch v.Type() {
	case world.Bool:
		data = append(data, rezi.EncBool(v.Bool())...)
	case world.Num:
		data = append(data, rezi.EncInt(v.Num())...)
	default:
		data = append(data, rezi.EncString(v.Str())...)
	}
	return data
}

func decValue(data []byte) (world.Value, []byte, error) {
	var err error
	var vType int

	if vType, data, err = decInt(data); err != nil {
		return world.Value{}, data, fmt.Errorf("value type: %w", err)
	}

	switch world.ValueType(vType) {
	case world.Bool:
		b, n, err := rezi.DecBool(data)
		if err != nil {
			return world.Value{}, data, err
		}
		return world.NewBool(b), data[n:], nil
	case world.Num:
		num, n, err := rezi.DecInt(data)
		if err != nil {
			return world.Value{}, data, err
		}
		return world.NewNum(num), data[n:], nil
	case world.Str:
		s, n, err := rezi.DecString(data)
		if err != nil {
			return world.Value{}, data, err
		}
		return world.NewStr(s), data[n:], nil
	default:
		return world.Value{}, data, fmt.Errorf("unknown value type %d", vType)
	}
}

// decInt and decString wrap the rezi decode calls so callers can consume the
// data slice in one assignment.

func decInt(data []byte) (int, []byte, error) {
	v, n, err := rezi.DecInt(data)
	if err != nil {
		return 0, data, err
	}
	return v, data[n:], nil
}

func decString(data []byte) (string, []byte, error) {
	s, n, err := rezi.DecString(data)
	if err != nil {
		return "", data, err
	}
	return s, data[n:], nil
}
