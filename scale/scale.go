package scale

import (
	"github.com/jsphweid/chordid/model"
)

// majorPattern is the semitone offset of each major-scale degree from the
// tonic.
var majorPattern = [7]int{0, 2, 4, 5, 7, 9, 11}

// Major returns the seven pitch classes of the major scale rooted at root,
// in degree order, each reduced mod 12.
func Major(root model.PitchClass) []model.PitchClass {
	res := make([]model.PitchClass, len(majorPattern))
	for i, offset := range majorPattern {
		res[i] = (root + offset) % 12
	}
	return res
}
