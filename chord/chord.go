// Package chord turns parsed chord symbols into pitch-class sets.
package chord

import (
	"strings"

	"github.com/aguilarcarboni/musical-grammar/model"
	"github.com/aguilarcarboni/musical-grammar/util"
)

// Names are the twelve pitch-class labels in chromatic order. Sharp spellings
// only; the histogram does not distinguish enharmonics.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// LetterClass maps the white-key letters to pitch classes.
var LetterClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// AccOffset maps accidentals to semitone adjustments.
var AccOffset = map[byte]int{'#': 1, 'b': -1}

// Set is a pitch-class set over 0..11.
type Set map[int]bool

// Sorted returns the members in chromatic order.
func (s Set) Sorted() []int {
	return util.SortedKeys(s)
}

// NoteNames renders the set as space-separated note names, e.g. "C E G".
func (s Set) NoteNames() string {
	var names []string
	for _, pc := range s.Sorted() {
		names = append(names, Names[pc])
	}
	return strings.Join(names, " ")
}

// Base third/fifth intervals per quality (semitones from the root).
var qualityIntervals = map[string][]int{
	"":  {4, 7}, // major
	"-": {3, 7}, // minor
	"+": {4, 8}, // augmented
	"o": {3, 6}, // diminished
	"5": {7},    // power chord
	"1": {},     // unison
}

// Suspensions replace the third and keep the fifth.
var suspIntervals = map[string][]int{
	"sus2":  {2, 7},
	"sus4":  {5, 7},
	"sus24": {2, 5, 7},
}

// Extension tones (semitones from the root, octave-reduced).
var extInterval = map[string]int{
	"6": 9, "7": 10, "9": 2, "11": 5, "13": 9,
}

func pc(n int) int { return ((n % 12) + 12) % 12 }

// Notes derives the pitch-class set of a chord: base triad per quality or
// suspension, minus omissions, plus extensions, additions and slash bass.
func Notes(c model.Chord) Set {
	notes := Set{c.RootClass: true}
	for _, iv := range baseIntervals(c) {
		notes[pc(c.RootClass+iv)] = true
	}

	// Tracks whether some seventh is already in the chord so additions do not
	// stack a second, conflicting one.
	hasSeventh := false
	if c.Number != "" {
		intervals, sev := extensionIntervals(c.Number, c.Caret, true)
		for _, iv := range intervals {
			notes[pc(c.RootClass+iv)] = true
		}
		hasSeventh = sev
	}

	if c.Addition != nil {
		offset := 0
		if c.Addition.Accidental != "" {
			offset = AccOffset[c.Addition.Accidental[0]]
		}
		if c.Addition.Target == "5" {
			// An altered fifth substitutes the whole perfect-fifth family.
			for _, candidate := range []int{6, 7, 8} {
				delete(notes, pc(c.RootClass+candidate))
			}
			notes[pc(c.RootClass+7+offset)] = true
		} else {
			include7 := !c.Addition.Parenthesized &&
				(c.Addition.Target == "9" || c.Addition.Target == "11" || c.Addition.Target == "13")
			intervals, sev := extensionIntervals(c.Addition.Target, false, include7)
			notes[pc(c.RootClass+intervals[0]+offset)] = true
			if len(intervals) > 1 && sev && !hasSeventh {
				notes[pc(c.RootClass+10)] = true
				hasSeventh = true
			}
		}
	}

	if c.BassClass >= 0 {
		notes[c.BassClass] = true
	}
	return notes
}

func baseIntervals(c model.Chord) []int {
	if c.Suspension != "" {
		return applyOmissions(suspIntervals[c.Suspension], c.Omission)
	}
	return applyOmissions(qualityIntervals[c.Quality], c.Omission)
}

func applyOmissions(intervals []int, omission string) []int {
	if omission == "" {
		return intervals
	}
	dropThird := omission == "no3" || omission == "no35"
	dropFifth := omission == "no5" || omission == "no35"
	var res []int
	for _, iv := range intervals {
		if dropThird && (iv == 3 || iv == 4) {
			continue
		}
		if dropFifth && (iv == 6 || iv == 7 || iv == 8) {
			continue
		}
		res = append(res, iv)
	}
	return res
}

// extensionIntervals returns the intervals an extension contributes and
// whether they include a seventh. 9/11/13 imply a seventh when include7 is
// set; a caret raises it to a major seventh.
func extensionIntervals(number string, caret, include7 bool) ([]int, bool) {
	seventh := 10
	if caret {
		seventh = 11
	}
	switch number {
	case "6":
		return []int{extInterval["6"]}, false
	case "7":
		return []int{seventh}, true
	default: // 9, 11, 13
		if include7 {
			return []int{extInterval[number], seventh}, true
		}
		return []int{extInterval[number]}, false
	}
}
