package pwf

import (
	"fmt"

	"github.com/maybell/parlance/internal/vocab"
	"github.com/maybell/parlance/internal/world"
)

func parseTopLevel(tl topLevel) (Definition, error) {
	var def Definition

	if tl.Format != CurrentFormat {
		return def, fmt.Errorf("format: must be %q, not %q", CurrentFormat, tl.Format)
	}
	if tl.Type != TypeWorld {
		return def, fmt.Errorf("type: must be %q, not %q", TypeWorld, tl.Type)
	}

	// gather object ids first so relation references can be checked
	// immediately as they are read
	ids := make(map[string]bool)
	for i, obj := range tl.Objects {
		if obj.ID == "" {
			return def, fmt.Errorf("objects[%d]: id: must not be empty", i)
		}
		if ids[obj.ID] {
			return def, fmt.Errorf("objects[%d]: id: %q is declared more than once", i, obj.ID)
		}
		ids[obj.ID] = true
	}

	for i, mv := range tl.Vocab {
		grp, err := parseVocabGroup(mv)
		if err != nil {
			return def, fmt.Errorf("vocab[%d]: %w", i, err)
		}
		def.Vocab = append(def.Vocab, grp)
	}

	for i, mo := range tl.Objects {
		obj, err := parseObject(mo)
		if err != nil {
			return def, fmt.Errorf("objects[%q]: %w", tl.Objects[i].ID, err)
		}
		def.Objects = append(def.Objects, obj)
	}

	for i, mr := range tl.Relations {
		if mr.Name == "" {
			return def, fmt.Errorf("relations[%d]: name: must not be empty", i)
		}
		if !ids[mr.Subject] {
			return def, fmt.Errorf("relations[%d]: subject: no object with id %q exists", i, mr.Subject)
		}
		if !ids[mr.Object] {
			return def, fmt.Errorf("relations[%d]: object: no object with id %q exists", i, mr.Object)
		}
		def.Relations = append(def.Relations, world.Triple{
			Name:    mr.Name,
			Subject: mr.Subject,
			Object:  mr.Object,
		})
	}

	return def, nil
}

func parseVocabGroup(mv marshaledVocab) (VocabGroup, error) {
	var grp VocabGroup

	if mv.Canonical == "" {
		return grp, fmt.Errorf("canonical: must not be empty")
	}

	class, ok := vocab.ParseClass(mv.Class)
	if !ok {
		return grp, fmt.Errorf("class: must be \"verb\" or \"direction\", not %q", mv.Class)
	}

	grp.Canonical = mv.Canonical
	grp.Class = class
	grp.Aliases = append(grp.Aliases, mv.Aliases...)
	return grp, nil
}

func parseObject(mo marshaledObject) (Object, error) {
	obj := Object{
		ID:         mo.ID,
		Kind:       mo.Kind,
		Properties: make(map[string]world.Value),
	}

	for name, raw := range mo.Properties {
		v, err := world.FromNative(raw)
		if err != nil {
			return obj, fmt.Errorf("properties[%q]: %w", name, err)
		}
		obj.Properties[name] = v
	}

	return obj, nil
}
