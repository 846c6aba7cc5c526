package parlance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maybell/parlance/internal/command"
	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/pwf"
	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

func Test_Session_Parse(t *testing.T) {
	assert := assert.New(t)
	s := NewSession()

	cmd, err := s.Parse("take the sword")
	if !assert.NoError(err) {
		return
	}

	assert.Equal("take", cmd.Verb)
	assert.Equal("sword", cmd.DirectObject)
	assert.Equal(command.VerbNoun, cmd.Pattern)
	assert.Equal("take the sword", cmd.RawInput)
}

func Test_Session_Teach(t *testing.T) {
	t.Run("taught alias parses immediately", func(t *testing.T) {
		assert := assert.New(t)
		s := NewSession()

		err := s.Teach("steal", "take")
		if !assert.NoError(err) {
			return
		}

		cmd, err := s.Parse("steal key")
		if !assert.NoError(err) {
			return
		}
		assert.Equal("take", cmd.Verb)
		assert.Equal("key", cmd.DirectObject)
	})

	t.Run("teaching through an alias flattens", func(t *testing.T) {
		assert := assert.New(t)
		s := NewSession()

		err := s.Teach("nab", "grab")
		if !assert.NoError(err) {
			return
		}

		cmd, err := s.Parse("nab key")
		if !assert.NoError(err) {
			return
		}
		assert.Equal("take", cmd.Verb)
	})

	t.Run("unknown canonical word", func(t *testing.T) {
		assert := assert.New(t)
		s := NewSession()

		err := s.Teach("florp", "blorbo")

		var iaErr *perrors.InvalidAliasError
		assert.ErrorAs(err, &iaErr)
	})
}

func Test_Session_worldAffectsParsing(t *testing.T) {
	assert := assert.New(t)
	s := NewSession()

	s.World().SetKind("sword1", "sword")
	s.World().SetProperty("sword1", "red", world.NewBool(true))
	s.World().SetKind("sword2", "sword")

	cmd, err := s.Parse("take red sword")
	if !assert.NoError(err) {
		return
	}

	assert.Equal("sword1", cmd.DirectObject)
}

func Test_Session_ApplyDefinition(t *testing.T) {
	assert := assert.New(t)
	s := NewSession()

	def := pwf.Definition{
		Vocab: []pwf.VocabGroup{
			{Canonical: "steal", Class: vocab.Verb, Aliases: []string{"pilfer"}},
		},
		Objects: []pwf.Object{
			{ID: "bag", Kind: "container"},
			{
				ID:   "sword1",
				Kind: "sword",
				Properties: map[string]world.Value{
					"red": world.NewBool(true),
				},
			},
		},
		Relations: []world.Triple{
			{Name: "contains", Subject: "bag", Object: "sword1"},
		},
	}

	err := s.ApplyDefinition(def)
	if !assert.NoError(err) {
		return
	}

	cmd, err := s.Parse("pilfer key")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("steal", cmd.Verb)

	kind, ok := s.World().Kind("sword1")
	assert.True(ok)
	assert.Equal("sword", kind)

	assert.Equal([]string{"sword1"}, s.World().Related("contains", "bag"))
}
