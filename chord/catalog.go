package chord

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordid/model"
	"golang.org/x/exp/slices"
)

// Quality classifies a template's third so that nothing downstream has to
// sniff template names for substrings.
type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityOther
)

func (q Quality) String() string {
	switch q {
	case QualityMajor:
		return "Major"
	case QualityMinor:
		return "Minor"
	default:
		return "Other"
	}
}

// Template is one named chord type: a set of semitone offsets from an
// implicit root at 0. Templates are static data, never mutated after init.
type Template struct {
	Name    string
	Offsets []int
	Quality Quality
	// Seventh marks the seventh-chord templates (including the ninths,
	// which extend them).
	Seventh bool

	// intervals is Offsets reduced mod 12, deduplicated and sorted;
	// built once at startup.
	intervals []int
}

// Has reports whether the template contains the given mod-12 interval.
func (t Template) Has(interval int) bool {
	return slices.Contains(t.intervals, interval)
}

// Catalog lists every known chord template. Declaration order is part of
// the matching semantics: when several candidate roots could name a chord,
// earlier entries win, so the order here must never be shuffled.
//
// Ninth-family entries keep their documented compound offsets (14); the
// interval keys built from them reduce mod 12 (14 -> 2) so that five-note
// voicings actually match.
var Catalog = []Template{
	{Name: "Major", Offsets: []int{0, 4, 7}, Quality: QualityMajor},
	{Name: "Minor", Offsets: []int{0, 3, 7}, Quality: QualityMinor},
	{Name: "Diminished", Offsets: []int{0, 3, 6}, Quality: QualityOther},
	{Name: "Augmented", Offsets: []int{0, 4, 8}, Quality: QualityOther},
	{Name: "Sus2", Offsets: []int{0, 2, 7}, Quality: QualityOther},
	{Name: "Sus4", Offsets: []int{0, 5, 7}, Quality: QualityOther},
	{Name: "Major 7th", Offsets: []int{0, 4, 7, 11}, Quality: QualityMajor, Seventh: true},
	{Name: "Minor 7th", Offsets: []int{0, 3, 7, 10}, Quality: QualityMinor, Seventh: true},
	{Name: "Dominant 7th", Offsets: []int{0, 4, 7, 10}, Quality: QualityMajor, Seventh: true},
	{Name: "Diminished 7th", Offsets: []int{0, 3, 6, 9}, Quality: QualityOther, Seventh: true},
	{Name: "Half-Diminished 7th", Offsets: []int{0, 3, 6, 10}, Quality: QualityOther, Seventh: true},
	{Name: "Augmented 7th", Offsets: []int{0, 4, 8, 10}, Quality: QualityOther, Seventh: true},
	{Name: "Major 6th", Offsets: []int{0, 4, 7, 9}, Quality: QualityMajor},
	{Name: "Minor 6th", Offsets: []int{0, 3, 7, 9}, Quality: QualityMinor},
	{Name: "9th", Offsets: []int{0, 4, 7, 10, 14}, Quality: QualityMajor, Seventh: true},
	{Name: "Minor 9th", Offsets: []int{0, 3, 7, 10, 14}, Quality: QualityMinor, Seventh: true},
	{Name: "Major 9th", Offsets: []int{0, 4, 7, 11, 14}, Quality: QualityMajor, Seventh: true},
	{Name: "6/9", Offsets: []int{0, 4, 7, 9, 14}, Quality: QualityMajor},
	{Name: "5 (Power Chord)", Offsets: []int{0, 7}, Quality: QualityOther},
}

// byKey maps an interval key to the catalog position of the template it
// names. Built at startup; the first template declared with a given
// interval set wins, keeping lookups deterministic.
var byKey = make(map[string]int)

func init() {
	for i := range Catalog {
		Catalog[i].intervals = reduce(Catalog[i].Offsets)
		key := IntervalKey(Catalog[i].Offsets)
		if _, ok := byKey[key]; !ok {
			byKey[key] = i
		}
	}
}

// reduce maps offsets into [0,12), deduplicates and sorts them.
func reduce(offsets []int) []int {
	seen := make(map[int]bool, len(offsets))
	var res []int
	for _, o := range offsets {
		o = ((o % 12) + 12) % 12
		if !seen[o] {
			seen[o] = true
			res = append(res, o)
		}
	}
	sort.Ints(res)
	return res
}

// IntervalKey encodes an interval set as a canonical string like "0-4-7":
// reduced mod 12, deduplicated, ascending. Two interval sets are equal
// exactly when their keys are equal.
func IntervalKey(intervals []int) string {
	reduced := reduce(intervals)
	parts := make([]string, len(reduced))
	for i, v := range reduced {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "-")
}

// Overview returns the catalog as wire-friendly entries, in declaration
// order.
func Overview() []model.TemplateOverview {
	res := make([]model.TemplateOverview, 0, len(Catalog))
	for _, t := range Catalog {
		intervals := make([]int, len(t.intervals))
		copy(intervals, t.intervals)
		res = append(res, model.TemplateOverview{
			Name:      t.Name,
			Intervals: intervals,
			Quality:   t.Quality.String(),
			Seventh:   t.Seventh,
		})
	}
	return res
}
