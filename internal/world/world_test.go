package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Model_kinds(t *testing.T) {
	assert := assert.New(t)
	m := NewModel()

	_, ok := m.Kind("chest")
	assert.False(ok)

	m.SetKind("chest", "container")
	kind, ok := m.Kind("chest")
	assert.True(ok)
	assert.Equal("container", kind)

	// an object has at most one kind; assignment overwrites
	m.SetKind("chest", "mimic")
	kind, _ = m.Kind("chest")
	assert.Equal("mimic", kind)
}

func Test_Model_properties(t *testing.T) {
	t.Run("read of unset property reports absence", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		_, ok := m.Property("chest", "locked")
		assert.False(ok)
	})

	t.Run("set then read", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.SetProperty("chest", "locked", NewBool(true))

		v, ok := m.Property("chest", "locked")
		assert.True(ok)
		assert.True(v.Bool())
	})

	t.Run("last write wins even across types", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.SetProperty("chest", "locked", NewBool(true))
		m.SetProperty("chest", "locked", NewStr("jammed"))

		v, ok := m.Property("chest", "locked")
		assert.True(ok)
		assert.Equal(Str, v.Type())
		assert.Equal("jammed", v.Str())
	})

	t.Run("Properties returns a copy", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.SetProperty("chest", "weight", NewNum(12))

		props := m.Properties("chest")
		props["weight"] = NewNum(99)

		v, _ := m.Property("chest", "weight")
		assert.Equal(12, v.Num())
	})
}

func Test_Model_relations(t *testing.T) {
	t.Run("asserted triple holds", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Relate("contains", "chest", "key")

		assert.Equal([]string{"key"}, m.Related("contains", "chest"))
	})

	t.Run("relations are directed", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Relate("contains", "chest", "key")

		assert.Nil(m.Related("contains", "key"))
	})

	t.Run("re-asserting is a no-op", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Relate("contains", "chest", "key")
		m.Relate("contains", "chest", "key")

		assert.Equal([]string{"key"}, m.Related("contains", "chest"))
	})

	t.Run("objects come back in assertion order", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Relate("contains", "chest", "key")
		m.Relate("contains", "chest", "amulet")
		m.Relate("contains", "chest", "coin")

		assert.Equal([]string{"key", "amulet", "coin"}, m.Related("contains", "chest"))
	})

	t.Run("retract removes only the named triple", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Relate("contains", "chest", "key")
		m.Relate("contains", "chest", "coin")
		m.Unrelate("contains", "chest", "key")

		assert.Equal([]string{"coin"}, m.Related("contains", "chest"))
	})

	t.Run("retracting an absent triple is a no-op", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Unrelate("contains", "chest", "key")

		assert.Nil(m.Related("contains", "chest"))
	})

	t.Run("full listing is ordered by name then subject", func(t *testing.T) {
		assert := assert.New(t)
		m := NewModel()

		m.Relate("supports", "table", "lamp")
		m.Relate("contains", "bag", "coin")
		m.Relate("contains", "chest", "key")
		m.Relate("contains", "bag", "apple")

		expect := []Triple{
			{Name: "contains", Subject: "bag", Object: "coin"},
			{Name: "contains", Subject: "bag", Object: "apple"},
			{Name: "contains", Subject: "chest", Object: "key"},
			{Name: "supports", Subject: "table", Object: "lamp"},
		}
		assert.Equal(expect, m.Relations())
	})
}

func Test_Model_objects(t *testing.T) {
	assert := assert.New(t)
	m := NewModel()

	assert.False(m.HasObject("chest"))

	m.SetKind("chest", "container")
	m.SetProperty("key", "shiny", NewBool(true))
	m.Relate("guards", "dragon", "hoard")

	// every mention path registers the object
	assert.True(m.HasObject("chest"))
	assert.True(m.HasObject("key"))
	assert.True(m.HasObject("dragon"))
	assert.True(m.HasObject("hoard"))

	assert.Equal([]string{"chest", "key", "dragon", "hoard"}, m.Objects())
}

func Test_Model_ObjectsOfKind(t *testing.T) {
	assert := assert.New(t)
	m := NewModel()

	m.SetKind("sword1", "sword")
	m.SetKind("shield1", "shield")
	m.SetKind("sword2", "sword")

	assert.Equal([]string{"sword1", "sword2"}, m.ObjectsOfKind("sword"))
	assert.Equal([]string{"shield1"}, m.ObjectsOfKind("shield"))
	assert.Nil(m.ObjectsOfKind("potion"))
}
