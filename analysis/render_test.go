package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aguilarcarboni/musical-grammar/analysis"
	"github.com/aguilarcarboni/musical-grammar/chord"
)

func tableLines(t *testing.T, text string, layout analysis.Layout) []string {
	t.Helper()
	rows, err := analysis.Expand(parse(t, text))
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(analysis.FormatTable(rows, layout), "\n")
}

func TestFormatTableSingleChord(t *testing.T) {
	assert := assert.New(t)

	lines := tableLines(t, "| C || ", analysis.Wide)
	// header, divider, one chord row, divider, totals
	assert.Len(lines, 5)

	assert.Equal(chord.Names[:], strings.Fields(lines[0]))
	assert.Equal([]string{"1.", "*", "*", "*", "C"}, strings.Fields(lines[2]))
	assert.Equal(
		[]string{"1", "0", "0", "0", "1", "0", "0", "1", "0", "0", "0", "0"},
		strings.Fields(lines[4]),
	)
}

func TestFormatTableExcludesRepeatBars(t *testing.T) {
	assert := assert.New(t)

	lines := tableLines(t, "| C | % || ", analysis.Wide)
	assert.Len(lines, 5)
	assert.Equal(
		[]string{"1", "0", "0", "0", "1", "0", "0", "1", "0", "0", "0", "0"},
		strings.Fields(lines[4]),
	)
}

func TestFormatTableStarColumnsMatchNotes(t *testing.T) {
	assert := assert.New(t)

	lines := tableLines(t, "| G7 || ", analysis.Wide)
	// G7 = G B D F: stars then the label.
	assert.Equal([]string{"1.", "*", "*", "*", "*", "G7"}, strings.Fields(lines[2]))
	assert.Equal(
		[]string{"0", "0", "1", "0", "0", "1", "0", "1", "0", "0", "0", "1"},
		strings.Fields(lines[4]),
	)
}

func TestLayoutsDifferOnlyInSpacing(t *testing.T) {
	assert := assert.New(t)

	wide := tableLines(t, "| C G7 | D- || ", analysis.Wide)
	compact := tableLines(t, "| C G7 | D- || ", analysis.Compact)

	assert.Equal(len(wide), len(compact))
	for i := range wide {
		assert.Equal(strings.Fields(wide[i]), strings.Fields(compact[i]))
	}
	// Wide really is wider.
	assert.Greater(len(wide[0]), len(compact[0]))
}

func TestParseLayout(t *testing.T) {
	assert := assert.New(t)

	l, err := analysis.ParseLayout("")
	assert.NoError(err)
	assert.Equal(analysis.Wide, l)

	l, err = analysis.ParseLayout("compact")
	assert.NoError(err)
	assert.Equal(analysis.Compact, l)

	_, err = analysis.ParseLayout("huge")
	assert.Error(err)
}
