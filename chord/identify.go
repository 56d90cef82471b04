package chord

import (
	"fmt"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/scale"
)

// Identify returns the display string for a chord built from note names.
func Identify(notes model.Notes, key string, identifyInversions bool) string {
	return Match(notes, key, identifyInversions).Display
}

// IdentifyWithInversion returns the display string with the inversion
// labeled instead of plain slash notation.
func IdentifyWithInversion(notes model.Notes, key string) string {
	return MatchWithInversion(notes, key).Display
}

// IdentifyNumeric returns the display string for a chord built from major
// scale degrees of key.
func IdentifyNumeric(degrees []int, key string, identifyInversions bool) string {
	return MatchNumeric(degrees, key, identifyInversions).Display
}

// MatchNumeric translates scale degrees (1-7) of the major scale of key
// into note names and matches those. The key is validated first;
// translation stops at the first out-of-range degree.
func MatchNumeric(degrees []int, key string, identifyInversions bool) model.Result {
	root, ok := note.IndexOf(note.Normalize(key))
	if !ok {
		return model.Result{Kind: model.KindInvalidKey, Display: "invalid key"}
	}

	sc := scale.Major(root)
	notes := make(model.Notes, 0, len(degrees))
	for _, d := range degrees {
		if d < 1 || d > 7 {
			return model.Result{
				Kind:    model.KindInvalidDegree,
				Display: fmt.Sprintf("invalid scale degree: %d", d),
			}
		}
		notes = append(notes, note.Name(sc[d-1]))
	}
	return Match(notes, key, identifyInversions)
}
