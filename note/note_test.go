package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResolvesFlats(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Normalize("Db"))
	assert.Equal("D#", Normalize("Eb"))
	assert.Equal("F#", Normalize("Gb"))
	assert.Equal("G#", Normalize("Ab"))
	assert.Equal("A#", Normalize("Bb"))
}

func TestNormalizePassesThroughNonFlats(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Normalize("C"))
	assert.Equal("F#", Normalize("F#"))
	assert.Equal("X", Normalize("X"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, name := range AllNames() {
		once := Normalize(name)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestIndexOf(t *testing.T) {
	assert := assert.New(t)

	pc, ok := IndexOf("C")
	assert.True(ok)
	assert.Equal(0, pc)

	pc, ok = IndexOf("A#")
	assert.True(ok)
	assert.Equal(10, pc)

	// Flat spellings are only valid after normalization.
	_, ok = IndexOf("Bb")
	assert.False(ok)

	_, ok = IndexOf("X")
	assert.False(ok)
}

func TestNameReducesMod12(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Name(0))
	assert.Equal("B", Name(11))
	assert.Equal("C", Name(12))
	assert.Equal("D", Name(14))
}

func TestAllKeysOrder(t *testing.T) {
	assert := assert.New(t)
	keys := AllKeys()
	assert.Len(keys, 12)
	assert.Equal("C", keys[0])
	assert.Equal("F#", keys[6])
	assert.Equal("B", keys[11])
}

func TestAllNamesIncludesFlatsSorted(t *testing.T) {
	names := AllNames()
	assert.Len(t, names, 17)
	assert.Equal(t, []string{"Ab", "Bb", "Db", "Eb", "Gb"}, names[12:])
}
