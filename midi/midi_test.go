package midi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aguilarcarboni/musical-grammar/constants"
	"github.com/aguilarcarboni/musical-grammar/midi"
	"github.com/aguilarcarboni/musical-grammar/song"
)

func countNotes(t *testing.T, text string) (ons, offs int) {
	t.Helper()
	s, err := song.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	mf, err := midi.SongSMF(s)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, mf.Tracks, 1)

	for _, evt := range mf.Tracks[0] {
		var channel, key, velocity uint8
		switch {
		case evt.Message.GetNoteOn(&channel, &key, &velocity):
			ons++
		case evt.Message.GetNoteOff(&channel, &key, &velocity):
			offs++
		}
	}
	return ons, offs
}

func TestSongSMFPlaysEveryChordTone(t *testing.T) {
	assert := assert.New(t)

	// C major is three tones.
	ons, offs := countNotes(t, "| C || ")
	assert.Equal(3, ons)
	assert.Equal(3, offs)
}

func TestSongSMFRepeatsReferentBar(t *testing.T) {
	assert := assert.New(t)

	ons, offs := countNotes(t, "| C | % || ")
	assert.Equal(6, ons)
	assert.Equal(6, offs)
}

func TestSongSMFSilentNoChordBar(t *testing.T) {
	assert := assert.New(t)

	ons, _ := countNotes(t, "| C | NC | G || ")
	assert.Equal(6, ons)
}

func TestSongSMFDefaultsToFourFour(t *testing.T) {
	assert := assert.New(t)

	s, err := song.Parse("| C || ")
	assert.NoError(err)
	mf, err := midi.SongSMF(s)
	assert.NoError(err)

	// Without a meter annotation the single chord fills a 4/4 bar.
	for _, evt := range mf.Tracks[0] {
		var channel, key, velocity uint8
		if evt.Message.GetNoteOff(&channel, &key, &velocity) {
			assert.Equal(uint32(4*constants.TicksPerQuarter), evt.Delta)
			return
		}
	}
	t.Fatal("no note off event found")
}

func TestSongSMFFailsOnLeadingRepeat(t *testing.T) {
	s, err := song.Parse("| % ||")
	assert.NoError(t, err)

	_, err = midi.SongSMF(s)
	assert.Error(t, err)
}
