package model

// PitchClass is one of the twelve equal-tempered semitones, 0 (C) through
// 11 (B). Everything downstream of normalization works in pitch classes.
type PitchClass = int

// Notes is an ordered sequence of note names. The first element is the bass.
type Notes = []string

// ResultKind tags what an identification produced. Failures are results,
// not errors: every entry point returns a Result for well-formed calls.
type ResultKind string

const (
	KindChord         ResultKind = "chord"
	KindNote          ResultKind = "note"
	KindNoNotes       ResultKind = "no_notes"
	KindInvalidNote   ResultKind = "invalid_note"
	KindInvalidKey    ResultKind = "invalid_key"
	KindInvalidDegree ResultKind = "invalid_degree"
	KindUnknown       ResultKind = "unknown"
)

// Result is the outcome of a single identification.
type Result struct {
	Kind    ResultKind `json:"kind"`
	Display string     `json:"display"`

	// Populated for KindChord (and Root alone for KindNote).
	Root     string `json:"root,omitempty"`
	Template string `json:"template,omitempty"`
	Bass     string `json:"bass,omitempty"`

	// Partial marks an incomplete-chord classification (2- or 3-note input
	// that only matched by containment, not set equality).
	Partial bool `json:"partial,omitempty"`
}
