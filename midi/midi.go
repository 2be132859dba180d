// Package midi renders a parsed song as a Standard MIDI File. Each played
// bar becomes block chords around middle C; repeat bars restate their
// referent; NC bars are silence.
package midi

import (
	"errors"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/aguilarcarboni/musical-grammar/chord"
	"github.com/aguilarcarboni/musical-grammar/constants"
	"github.com/aguilarcarboni/musical-grammar/model"
)

// SongSMF builds the MIDI file for a song. Explicit meters persist until
// changed; bars default to 4/4.
func SongSMF(s model.Song) (*smf.SMF, error) {
	mf := smf.New()
	mf.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("chords"))
	tr.Add(0, smf.MetaTempo(constants.ExportTempoBPM))
	tr.Add(0, smf.MetaMeter(constants.DefaultMeterNumerator, constants.DefaultMeterDenominator))

	meter := model.Meter{
		Numerator:   constants.DefaultMeterNumerator,
		Denominator: constants.DefaultMeterDenominator,
	}
	var prev []model.Chord
	seenPlayed := false
	var rest uint32 // accumulated silence before the next event

	for _, bar := range s.Bars {
		if bar.Meter != nil && *bar.Meter != meter {
			meter = *bar.Meter
			tr.Add(rest, smf.MetaMeter(uint8(meter.Numerator), uint8(meter.Denominator)))
			rest = 0
		}

		chords := bar.Chords
		if bar.IsRepeat {
			if !seenPlayed {
				return nil, errors.New("repeat bar without a previous bar")
			}
			chords = prev
		} else {
			seenPlayed = true
			prev = bar.Chords
		}

		barTicks := uint32(meter.Numerator) * constants.TicksPerQuarter * 4 / uint32(meter.Denominator)
		if len(chords) == 0 {
			rest += barTicks
			continue
		}

		span := barTicks / uint32(len(chords))
		for _, c := range chords {
			keys := chordKeys(c)
			for i, key := range keys {
				delta := uint32(0)
				if i == 0 {
					delta = rest
					rest = 0
				}
				tr.Add(delta, midi.NoteOn(0, key, constants.ExportVelocity))
			}
			for i, key := range keys {
				delta := uint32(0)
				if i == 0 {
					delta = span
				}
				tr.Add(delta, midi.NoteOff(0, key))
			}
		}
	}

	tr.Close(rest)
	mf.Add(tr)
	return mf, nil
}

// WriteSongFile exports the song to path as a type-0 MIDI file.
func WriteSongFile(s model.Song, path string) error {
	mf, err := SongSMF(s)
	if err != nil {
		return err
	}
	return mf.WriteFile(path)
}

func chordKeys(c model.Chord) []uint8 {
	pcs := chord.Notes(c).Sorted()
	keys := make([]uint8, 0, len(pcs))
	for _, pc := range pcs {
		keys = append(keys, uint8(constants.ExportBaseNote+pc))
	}
	return keys
}
