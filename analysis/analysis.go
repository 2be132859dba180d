// Package analysis walks a parsed song and produces the pitch-class
// histogram, the star table and the notes-file lines.
package analysis

import (
	"errors"

	"github.com/aguilarcarboni/musical-grammar/chord"
	"github.com/aguilarcarboni/musical-grammar/model"
)

var errNothingToRepeat = errors.New("repeat bar without a previous bar")

// Row is one table line: a chord's pitch-class set plus its label as written.
type Row struct {
	Notes chord.Set
	Label string
}

// Expand flattens a song into table rows, one per chord. Repeat bars are
// skipped entirely so they never double-count in the histogram.
func Expand(s model.Song) ([]Row, error) {
	var rows []Row
	seenPlayed := false
	for _, bar := range s.Bars {
		if bar.IsRepeat {
			if !seenPlayed {
				return nil, errNothingToRepeat
			}
			continue
		}
		seenPlayed = true
		for _, c := range bar.Chords {
			rows = append(rows, Row{Notes: chord.Notes(c), Label: c.Label})
		}
	}
	return rows, nil
}

// NoteLines renders one line of note names per chord occurrence in song
// order. Repeat bars resolve to the most recent non-repeat bar, so a run of
// "%" bars keeps restating the same referent.
func NoteLines(s model.Song) ([]string, error) {
	var lines []string
	var prev []model.Chord
	seenPlayed := false
	for _, bar := range s.Bars {
		chords := bar.Chords
		if bar.IsRepeat {
			if !seenPlayed {
				return nil, errNothingToRepeat
			}
			chords = prev
		} else {
			seenPlayed = true
			prev = bar.Chords
		}
		for _, c := range chords {
			lines = append(lines, chord.Notes(c).NoteNames())
		}
	}
	return lines, nil
}

// Histogram counts chord occurrences per pitch class, indexed chromatically.
type Histogram [12]int

func (h *Histogram) Add(s chord.Set) {
	for pc := range s {
		h[pc]++
	}
}

// BuildHistogram totals the pitch classes of every row.
func BuildHistogram(rows []Row) Histogram {
	var h Histogram
	for _, row := range rows {
		h.Add(row.Notes)
	}
	return h
}
