// Package chord names chords from pitch-class sets. The matcher searches
// candidate roots in input order against the template catalog in
// declaration order; the first exact interval-set match wins.
package chord

import (
	"fmt"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
)

// Match identifies a chord from an ordered sequence of note names. The
// first note is the bass. key is accepted for future disambiguation but is
// not read by matching. When identifyInversions is set and the matched
// root is not the bass, the result uses slash notation.
func Match(notes model.Notes, key string, identifyInversions bool) model.Result {
	return identify(notes, identifyInversions, false)
}

// MatchWithInversion is Match with the inversion labeled by the interval
// the bass forms with the root (first/second/third inversion) instead of
// plain slash notation. key is accepted but not read by matching.
func MatchWithInversion(notes model.Notes, key string) model.Result {
	return identify(notes, true, true)
}

func identify(notes model.Notes, identifyInversions bool, labelInversions bool) model.Result {
	if len(notes) == 0 {
		return model.Result{Kind: model.KindNoNotes, Display: "no notes provided"}
	}

	pcs, ok := toPitchClasses(notes)
	if !ok {
		return model.Result{Kind: model.KindInvalidNote, Display: "invalid note(s) found"}
	}

	if len(pcs) == 1 {
		name := note.Name(pcs[0])
		return model.Result{Kind: model.KindNote, Display: name + " note", Root: name}
	}

	bass := pcs[0]
	roots := distinctRoots(pcs)

	tpl, root, found := matchExact(pcs, roots)
	if !found {
		return matchPartial(pcs, roots)
	}
	if labelInversions {
		return labeledResult(tpl, root, bass)
	}
	return plainResult(tpl, root, bass, identifyInversions)
}

// toPitchClasses normalizes and resolves every note name, preserving input
// order. The second return is false as soon as any name fails to resolve.
func toPitchClasses(notes model.Notes) ([]model.PitchClass, bool) {
	pcs := make([]model.PitchClass, 0, len(notes))
	for _, n := range notes {
		pc, ok := note.IndexOf(note.Normalize(n))
		if !ok {
			return nil, false
		}
		pcs = append(pcs, pc)
	}
	return pcs, true
}

// distinctRoots returns the candidate roots: distinct pitch classes in
// order of first occurrence. The bass is always first.
func distinctRoots(pcs []model.PitchClass) []model.PitchClass {
	seen := make(map[model.PitchClass]bool, len(pcs))
	var roots []model.PitchClass
	for _, pc := range pcs {
		if !seen[pc] {
			seen[pc] = true
			roots = append(roots, pc)
		}
	}
	return roots
}

// intervalsFrom returns the interval set of pcs relative to root.
func intervalsFrom(pcs []model.PitchClass, root model.PitchClass) map[int]bool {
	set := make(map[int]bool, len(pcs))
	for _, pc := range pcs {
		set[(pc-root+12)%12] = true
	}
	return set
}

// matchExact searches candidate roots in order for a template whose
// interval set equals the input's interval set. Interval keys make set
// equality a single map lookup.
func matchExact(pcs []model.PitchClass, roots []model.PitchClass) (Template, model.PitchClass, bool) {
	for _, root := range roots {
		intervals := make([]int, len(pcs))
		for i, pc := range pcs {
			intervals[i] = (pc - root + 12) % 12
		}
		if i, ok := byKey[IntervalKey(intervals)]; ok {
			return Catalog[i], root, true
		}
	}
	return Template{}, 0, false
}

// matchPartial classifies 2- and 3-note inputs that matched no template.
// Conditions are checked per candidate root, in the fixed priority order
// below; the first candidate satisfying any condition wins.
func matchPartial(pcs []model.PitchClass, roots []model.PitchClass) model.Result {
	switch len(pcs) {
	case 2:
		for _, root := range roots {
			set := intervalsFrom(pcs, root)
			switch {
			case set[4]:
				return partialResult(root, "Major (no 5th)")
			case set[3]:
				return partialResult(root, "Minor (no 5th)")
			case set[7]:
				return partialResult(root, "5 (Power Chord)")
			}
		}
	case 3:
		for _, root := range roots {
			set := intervalsFrom(pcs, root)
			if set[4] {
				return partialResult(root, "Major")
			}
			if set[3] {
				return partialResult(root, "Minor")
			}
		}
	}
	return model.Result{Kind: model.KindUnknown, Display: "Unknown chord"}
}

func partialResult(root model.PitchClass, name string) model.Result {
	rootName := note.Name(root)
	return model.Result{
		Kind:     model.KindChord,
		Display:  rootName + " " + name,
		Root:     rootName,
		Template: name,
		Partial:  true,
	}
}

func plainResult(tpl Template, root, bass model.PitchClass, identifyInversions bool) model.Result {
	rootName := note.Name(root)
	bassName := note.Name(bass)
	res := model.Result{
		Kind:     model.KindChord,
		Root:     rootName,
		Template: tpl.Name,
		Bass:     bassName,
	}
	if identifyInversions && root != bass {
		res.Display = fmt.Sprintf("%s %s/%s", rootName, tpl.Name, bassName)
	} else {
		res.Display = fmt.Sprintf("%s %s", rootName, tpl.Name)
	}
	return res
}
