// Package world maintains the relational model of game objects that command
// resolution and game logic query: at most one kind per object, a property
// mapping per object, and a set of labeled directed relations between object
// pairs.
//
// Queries never fail for missing keys. "No such object yet" and "no such
// relation yet" are normal states, represented by zero values and empty
// slices, never by errors.
package world

import (
	"log"

	"github.com/maybell/parlance/internal/util"
)

// Triple is one named directed link between two object identifiers.
// (contains, chest, key) is distinct from (contains, key, chest).
type Triple struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Object  string `json:"object"`
}

// Model is the relational world model for a single game session. It is not
// safe for concurrent use; a host that shares one across goroutines must
// serialize access itself.
//
// The zero value is not usable; create a Model with NewModel.
type Model struct {
	objects *util.OrderedStrSet
	kinds   map[string]string
	props   map[string]map[string]Value
	rels    map[string]map[string]*util.OrderedStrSet
}

// NewModel creates a new empty Model.
func NewModel() *Model {
	return &Model{
		objects: util.NewOrderedStrSet(),
		kinds:   make(map[string]string),
		props:   make(map[string]map[string]Value),
		rels:    make(map[string]map[string]*util.OrderedStrSet),
	}
}

// SetKind assigns the kind of the object with the given identifier,
// overwriting any kind it had before. An object has at most one kind.
func (m *Model) SetKind(id, kind string) {
	m.objects.Add(id)
	m.kinds[id] = kind
}

// Kind returns the kind of the given object and whether one has been set.
func (m *Model) Kind(id string) (string, bool) {
	kind, ok := m.kinds[id]
	return kind, ok
}

// SetProperty assigns the named property on the given object, overwriting any
// prior value. The property map puts no type discipline on rewrites; the last
// write wins even when it changes the value's type. A type-changing rewrite
// is legal but usually a content bug, so it is logged at warning level rather
// than failed or silently allowed.
func (m *Model) SetProperty(id, name string, v Value) {
	m.objects.Add(id)

	objProps := m.props[id]
	if objProps == nil {
		objProps = make(map[string]Value)
		m.props[id] = objProps
	}

	if old, ok := objProps[name]; ok && old.Type() != v.Type() {
		log.Printf("WARN: object %q property %q rewritten as %s (was %s)", id, name, v.Type(), old.Type())
	}

	objProps[name] = v
}

// Property returns the named property of the given object and whether it has
// been set.
func (m *Model) Property(id, name string) (Value, bool) {
	v, ok := m.props[id][name]
	return v, ok
}

// Properties returns a copy of the full property mapping of the given object.
// Objects with no properties yield an empty map.
func (m *Model) Properties(id string) map[string]Value {
	cp := make(map[string]Value, len(m.props[id]))
	for k, v := range m.props[id] {
		cp[k] = v
	}
	return cp
}

// Relate asserts the relation triple (name, subject, object). Asserting a
// triple that already holds is a no-op, not an error.
func (m *Model) Relate(name, subject, object string) {
	m.objects.Add(subject)
	m.objects.Add(object)

	subjects := m.rels[name]
	if subjects == nil {
		subjects = make(map[string]*util.OrderedStrSet)
		m.rels[name] = subjects
	}

	objects := subjects[subject]
	if objects == nil {
		objects = util.NewOrderedStrSet()
		subjects[subject] = objects
	}

	objects.Add(object)
}

// Unrelate retracts the relation triple (name, subject, object). Retracting a
// triple that does not hold is a no-op, not an error.
func (m *Model) Unrelate(name, subject, object string) {
	objects := m.rels[name][subject]
	if objects == nil {
		return
	}
	objects.Remove(object)
}

// Related returns every object o for which (name, subject, o) holds, in the
// order the triples were first asserted. The order is stable so test output
// is reproducible, but callers must not read meaning into it.
func (m *Model) Related(name, subject string) []string {
	objects := m.rels[name][subject]
	if objects == nil {
		return nil
	}
	return objects.Elements()
}

// Objects returns every object identifier the model has seen, in the order
// each was first mentioned.
func (m *Model) Objects() []string {
	return m.objects.Elements()
}

// ObjectsOfKind returns the identifiers of every object whose kind is the
// given one, in the order the objects were first mentioned.
func (m *Model) ObjectsOfKind(kind string) []string {
	var ids []string
	for _, id := range m.objects.Elements() {
		if m.kinds[id] == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasObject returns whether the model has seen the given identifier at all,
// through a kind assignment, a property write, or a relation.
func (m *Model) HasObject(id string) bool {
	return m.objects.Has(id)
}

// Relations returns every triple currently asserted. Relation names and
// subjects are ordered alphabetically and objects within one subject by
// insertion, so the listing is reproducible.
func (m *Model) Relations() []Triple {
	var all []Triple
	for _, name := range util.OrderedKeys(m.rels) {
		subjects := m.rels[name]
		for _, subject := range util.OrderedKeys(subjects) {
			for _, object := range subjects[subject].Elements() {
				all = append(all, Triple{Name: name, Subject: subject, Object: object})
			}
		}
	}
	return all
}
