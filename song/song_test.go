package song

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aguilarcarboni/musical-grammar/model"
)

func TestParseSingleBar(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| C || ")
	assert.NoError(err)
	assert.Len(s.Bars, 1)
	assert.Len(s.Bars[0].Chords, 1)

	c := s.Bars[0].Chords[0]
	assert.Equal("C", c.Label)
	assert.Equal(0, c.RootClass)
	assert.Equal("", c.Quality)
	assert.Equal(-1, c.BassClass)
}

func TestParseMeterAndRepeat(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| 3/4 C- | % ||")
	assert.NoError(err)
	assert.Len(s.Bars, 2)

	assert.Equal(&model.Meter{Numerator: 3, Denominator: 4}, s.Bars[0].Meter)
	assert.Equal("-", s.Bars[0].Chords[0].Quality)
	assert.False(s.Bars[0].IsRepeat)

	assert.True(s.Bars[1].IsRepeat)
	assert.Empty(s.Bars[1].Chords)
	assert.Nil(s.Bars[1].Meter)
}

func TestParseNoChordBar(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| NC | C ||")
	assert.NoError(err)
	assert.Len(s.Bars, 2)
	assert.Empty(s.Bars[0].Chords)
	assert.False(s.Bars[0].IsRepeat)
}

func TestParseFullChordSymbol(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| C7b9/E ||")
	assert.NoError(err)

	c := s.Bars[0].Chords[0]
	assert.Equal("C7b9/E", c.Label)
	assert.Equal("7", c.Number)
	assert.False(c.Caret)
	assert.Equal(&model.Addition{Accidental: "b", Target: "9"}, c.Addition)
	assert.Equal(4, c.BassClass)
}

func TestParseCaretAndParenAddition(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| C^7 | C(9) ||")
	assert.NoError(err)

	assert.Equal("7", s.Bars[0].Chords[0].Number)
	assert.True(s.Bars[0].Chords[0].Caret)

	add := s.Bars[1].Chords[0].Addition
	assert.Equal(&model.Addition{Target: "9", Parenthesized: true}, add)
}

func TestParseSuspensionAndOmission(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| Csus24no35 ||")
	assert.NoError(err)

	c := s.Bars[0].Chords[0]
	assert.Equal("sus24", c.Suspension)
	assert.Equal("no35", c.Omission)
}

func TestParseAccidentalRoots(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| F# | Bb ||")
	assert.NoError(err)
	assert.Equal(6, s.Bars[0].Chords[0].RootClass)
	assert.Equal(10, s.Bars[1].Chords[0].RootClass)
}

func TestParseMultipleChordsPerBar(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| C G7 ||")
	assert.NoError(err)
	assert.Len(s.Bars, 1)
	assert.Len(s.Bars[0].Chords, 2)
	assert.Equal("G7", s.Bars[0].Chords[1].Label)
}

// Dangling "sus" consumes its prefix but leaves no suspension, matching the
// validator's language.
func TestParseDanglingSus(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("| Csus ||")
	assert.NoError(err)

	c := s.Bars[0].Chords[0]
	assert.Equal("Csus", c.Label)
	assert.Equal("", c.Suspension)
}

func TestParseFailsOnTruncatedInput(t *testing.T) {
	_, err := Parse("| C")
	assert.Error(t, err)
}
