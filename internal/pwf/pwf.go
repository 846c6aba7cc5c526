// Package pwf has functions for loading game content using the PWF (Parlance
// World Files) format, a TOML-based format that is used to define the
// vocabulary and world model a session starts with.
package pwf

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

// CurrentFormat is the format identifier a PWF file must declare.
const CurrentFormat = "parlance"

// TypeWorld is the only file type currently defined.
const TypeWorld = "world"

// Definition is the validated content of a PWF file, ready to be applied to
// a fresh session.
type Definition struct {
	// Vocab holds canonical words to add and the aliases to register for
	// them.
	Vocab []VocabGroup

	// Objects holds the world objects with their kinds and properties.
	Objects []Object

	// Relations holds the relation triples to assert, in file order.
	Relations []world.Triple
}

// VocabGroup is one canonical word together with its aliases, as declared in
// a definition file.
type VocabGroup struct {
	Canonical string
	Class     vocab.Class
	Aliases   []string
}

// Object is one world object declaration.
type Object struct {
	ID         string
	Kind       string
	Properties map[string]world.Value
}

// Load reads the PWF file at the given path, validates it, and returns its
// content.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}

	def, err := Decode(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Decode parses and validates PWF file content held in memory.
func Decode(data []byte) (Definition, error) {
	var tl topLevel

	if err := toml.Unmarshal(data, &tl); err != nil {
		return Definition{}, fmt.Errorf("decode TOML: %w", err)
	}

	return parseTopLevel(tl)
}

// topLevel is the raw decoded shape of a PWF file before validation.
type topLevel struct {
	Format    string              `toml:"format"`
	Type      string              `toml:"type"`
	Vocab     []marshaledVocab    `toml:"vocab"`
	Objects   []marshaledObject   `toml:"objects"`
	Relations []marshaledRelation `toml:"relations"`
}

type marshaledVocab struct {
	Canonical string   `toml:"canonical"`
	Class     string   `toml:"class"`
	Aliases   []string `toml:"aliases"`
}

type marshaledObject struct {
	ID         string                 `toml:"id"`
	Kind       string                 `toml:"kind"`
	Properties map[string]interface{} `toml:"properties"`
}

type marshaledRelation struct {
	Name    string `toml:"name"`
	Subject string `toml:"subject"`
	Object  string `toml:"object"`
}
