package chord

import (
	"fmt"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
)

// inversionLabel names an inversion by the interval the bass forms with
// the matched root. The guards are ordered and the first one that holds
// decides the label; combinations not covered return "".
func inversionLabel(tpl Template, interval int) string {
	switch {
	case (interval == 3 || interval == 4) && tpl.Has(interval):
		return "first inversion"
	case interval == 7 && tpl.Has(7):
		return "second inversion"
	case tpl.Seventh && (interval == 10 || interval == 11) && tpl.Has(interval):
		return "third inversion"
	}
	return ""
}

// labeledResult formats an exact match with its inversion classified.
// Root-position chords format like plain results; uncovered combinations
// fall back to a generic slash description.
func labeledResult(tpl Template, root, bass model.PitchClass) model.Result {
	if root == bass {
		return plainResult(tpl, root, bass, true)
	}

	rootName := note.Name(root)
	bassName := note.Name(bass)
	res := model.Result{
		Kind:     model.KindChord,
		Root:     rootName,
		Template: tpl.Name,
		Bass:     bassName,
	}

	label := inversionLabel(tpl, (bass-root+12)%12)
	if label == "" {
		res.Display = fmt.Sprintf("inversion with bass note: %s - %s %s/%s",
			bassName, rootName, tpl.Name, bassName)
	} else {
		res.Display = fmt.Sprintf("%s %s/%s (%s)", rootName, tpl.Name, bassName, label)
	}
	return res
}
