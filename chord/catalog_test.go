package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogDeclarationOrder(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Catalog, 19)
	assert.Equal("Major", Catalog[0].Name)
	assert.Equal("Minor", Catalog[1].Name)
	assert.Equal("5 (Power Chord)", Catalog[18].Name)
}

func TestIntervalKeyIsCanonical(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-4-7", IntervalKey([]int{0, 4, 7}))
	assert.Equal("0-4-7", IntervalKey([]int{7, 4, 0}))
	assert.Equal("0-4-7", IntervalKey([]int{0, 4, 4, 7}))
	assert.Equal("0-7", IntervalKey([]int{0, 7}))
}

// Compound ninth offsets reduce mod 12 when keys are built, so the four
// ninth-family templates are reachable by exact matching.
func TestIntervalKeyReducesCompoundOffsets(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-2-4-7-10", IntervalKey([]int{0, 4, 7, 10, 14}))
	assert.Equal("0-2-4-7-9", IntervalKey([]int{0, 4, 7, 9, 14}))
}

func TestIntervalKeysAreUniqueAcrossCatalog(t *testing.T) {
	seen := make(map[string]string)
	for _, tpl := range Catalog {
		key := IntervalKey(tpl.Offsets)
		if prev, ok := seen[key]; ok {
			t.Errorf("templates %q and %q share interval key %s", prev, tpl.Name, key)
		}
		seen[key] = tpl.Name
	}
}

func TestTemplateHas(t *testing.T) {
	assert := assert.New(t)

	major := Catalog[0]
	assert.True(major.Has(0))
	assert.True(major.Has(4))
	assert.False(major.Has(5))

	ninth := Catalog[14]
	assert.Equal("9th", ninth.Name)
	assert.True(ninth.Has(2)) // 14 reduced
	assert.True(ninth.Has(10))
}

func TestQualityAndSeventhTags(t *testing.T) {
	assert := assert.New(t)
	for _, tpl := range Catalog {
		switch tpl.Name {
		case "Major", "Major 7th", "Dominant 7th", "Major 6th", "9th", "Major 9th", "6/9":
			assert.Equal(QualityMajor, tpl.Quality, tpl.Name)
		case "Minor", "Minor 7th", "Minor 6th", "Minor 9th":
			assert.Equal(QualityMinor, tpl.Quality, tpl.Name)
		default:
			assert.Equal(QualityOther, tpl.Quality, tpl.Name)
		}
		switch tpl.Name {
		case "Major 7th", "Minor 7th", "Dominant 7th", "Diminished 7th",
			"Half-Diminished 7th", "Augmented 7th", "9th", "Minor 9th", "Major 9th":
			assert.True(tpl.Seventh, tpl.Name)
		default:
			assert.False(tpl.Seventh, tpl.Name)
		}
	}
}

func TestOverviewMatchesCatalogOrder(t *testing.T) {
	assert := assert.New(t)
	overview := Overview()
	assert.Len(overview, len(Catalog))
	for i, o := range overview {
		assert.Equal(Catalog[i].Name, o.Name)
	}
	assert.Equal([]int{0, 2, 4, 7, 10}, overview[14].Intervals)
	assert.Equal("Major", overview[0].Quality)
	assert.Equal("Other", overview[18].Quality)
}
