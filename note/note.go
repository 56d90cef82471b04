package note

import (
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/util"
)

// names holds the canonical sharp spelling for each pitch class, in
// pitch-class order.
var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flatToSharp resolves the accepted flat spellings to their canonical
// sharp equivalents. No other spelling variants are recognized.
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// pitchClasses is the reverse of names, built once at startup.
var pitchClasses = make(map[string]model.PitchClass, len(names))

func init() {
	for i, n := range names {
		pitchClasses[n] = i
	}
}

// Normalize maps a flat spelling to its sharp equivalent. Names that are
// not flat spellings (already canonical, or invalid) pass through
// unchanged, so Normalize is idempotent.
func Normalize(name string) string {
	if sharp, ok := flatToSharp[name]; ok {
		return sharp
	}
	return name
}

// IndexOf returns the pitch class of a canonical note name. The second
// return is false when the name is not one of the twelve canonical names;
// callers normalize first.
func IndexOf(name string) (model.PitchClass, bool) {
	pc, ok := pitchClasses[name]
	return pc, ok
}

// Name returns the canonical sharp spelling for a pitch class. Out-of-range
// values are reduced mod 12 so compound offsets name correctly.
func Name(pc model.PitchClass) string {
	return names[((pc%12)+12)%12]
}

// AllKeys returns the twelve canonical note names in pitch-class order.
func AllKeys() []string {
	res := make([]string, len(names))
	copy(res, names[:])
	return res
}

// AllNames returns every spelling the normalizer accepts: the canonical
// names in pitch-class order, then the flat spellings in sorted order.
func AllNames() []string {
	return append(AllKeys(), util.GetKeys(flatToSharp)...)
}
