package chord

import (
	"testing"

	"github.com/jsphweid/chordid/model"
	"github.com/stretchr/testify/assert"
)

func TestIdentifyNumericBasic(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C Major", IdentifyNumeric([]int{1, 3, 5}, "C", true))
	assert.Equal("G Major", IdentifyNumeric([]int{1, 3, 5}, "G", true))
	assert.Equal("D Minor", IdentifyNumeric([]int{2, 4, 6}, "C", true))
	assert.Equal("C Sus4", IdentifyNumeric([]int{1, 4, 5}, "C", true))
	assert.Equal("C Major 7th", IdentifyNumeric([]int{1, 3, 5, 7}, "C", true))
}

func TestIdentifyNumericFlatKey(t *testing.T) {
	assert.Equal(t, "A# Major", IdentifyNumeric([]int{1, 3, 5}, "Bb", true))
}

// The first degree supplies the bass, so degree order drives inversions.
func TestIdentifyNumericBassOrder(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C Major/G", IdentifyNumeric([]int{5, 1, 3}, "C", true))
	assert.Equal("C Major", IdentifyNumeric([]int{5, 1, 3}, "C", false))
}

func TestIdentifyNumericInvalidKey(t *testing.T) {
	res := MatchNumeric([]int{1, 3, 5}, "H", true)
	assert.Equal(t, model.KindInvalidKey, res.Kind)
	assert.Equal(t, "invalid key", res.Display)
}

func TestIdentifyNumericInvalidDegree(t *testing.T) {
	assert := assert.New(t)

	res := MatchNumeric([]int{1, 8, 5}, "C", true)
	assert.Equal(model.KindInvalidDegree, res.Kind)
	assert.Equal("invalid scale degree: 8", res.Display)

	// Translation short-circuits at the first offender.
	res = MatchNumeric([]int{1, 8, 0}, "C", true)
	assert.Equal("invalid scale degree: 8", res.Display)

	res = MatchNumeric([]int{0}, "C", true)
	assert.Equal("invalid scale degree: 0", res.Display)
}

func TestIdentifyNumericEmptyDegrees(t *testing.T) {
	res := MatchNumeric(nil, "C", true)
	assert.Equal(t, model.KindNoNotes, res.Kind)
}

// The key is validated before any degree is looked at.
func TestIdentifyNumericKeyCheckedFirst(t *testing.T) {
	res := MatchNumeric([]int{9}, "H", true)
	assert.Equal(t, model.KindInvalidKey, res.Kind)
}
