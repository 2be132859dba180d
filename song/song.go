// Package song re-derives the structural representation of a chart from its
// text. It applies the same productions as the grammar validator but builds
// model values instead of answering yes/no. Callers are expected to run
// grammar.Validate first; Parse makes no promises about rejected input.
package song

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aguilarcarboni/musical-grammar/chord"
	"github.com/aguilarcarboni/musical-grammar/model"
)

// Parse builds the Song structure for grammar-valid text.
func Parse(text string) (model.Song, error) {
	p := &parser{s: text}
	return p.run()
}

type parser struct {
	s   string
	pos int
}

type parseErr struct{ error }

func (p *parser) run() (s model.Song, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseErr)
			if !ok {
				panic(r)
			}
			err = pe.error
		}
	}()

	var bars []model.Bar
	p.skipWS()
	// Optional opening bar line, as in the validator.
	if p.peek() == '|' {
		p.pos++
	}
	bars = append(bars, p.bar())
	p.skipWS()
	p.expect('|')
	for {
		p.skipWS()
		if p.peek() == '|' {
			p.pos++
			break
		}
		bars = append(bars, p.bar())
		p.skipWS()
		p.expect('|')
	}
	p.skipWS()
	if p.pos != len(p.s) {
		p.fail("unexpected input after song")
	}
	return model.Song{Bars: bars}, nil
}

func (p *parser) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(parseErr{fmt.Errorf("%s at position %d", msg, p.pos)})
}

func (p *parser) peek() byte {
	if p.pos < len(p.s) {
		return p.s[p.pos]
	}
	return 0
}

func (p *parser) peekAt(offset int) byte {
	if p.pos+offset < len(p.s) {
		return p.s[p.pos+offset]
	}
	return 0
}

func (p *parser) next() byte {
	c := p.peek()
	if c == 0 {
		p.fail("unexpected end of input")
	}
	p.pos++
	return c
}

func (p *parser) match(token string) bool {
	if strings.HasPrefix(p.s[p.pos:], token) {
		p.pos += len(token)
		return true
	}
	return false
}

func (p *parser) expect(want byte) {
	if got := p.next(); got != want {
		p.fail("expected %q but got %q", want, got)
	}
}

func (p *parser) skipWS() {
	for {
		c := p.peek()
		if c != ' ' && c != '\t' && c != '\n' {
			return
		}
		p.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// bar := [meter] chords
// The surrounding "|" separators are consumed by run.
func (p *parser) bar() model.Bar {
	p.skipWS()
	var meter *model.Meter
	if isDigit(p.peek()) {
		m := p.meter()
		meter = &m
	}
	b := p.chords()
	b.Meter = meter
	return b
}

func (p *parser) meter() model.Meter {
	num := p.meterPart("numerator")
	p.expect('/')
	den := p.meterPart("denominator")
	return model.Meter{Numerator: num, Denominator: den}
}

func (p *parser) meterPart(what string) int {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		p.fail("expected %s", what)
	}
	n, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		p.fail("bad %s", what)
	}
	return n
}

func (p *parser) chords() model.Bar {
	p.skipWS()
	if p.match("NC") {
		return model.Bar{}
	}
	if p.peek() == '%' {
		p.pos++
		return model.Bar{IsRepeat: true}
	}

	var chords []model.Chord
	for {
		p.skipWS()
		if c := p.peek(); c == 0 || c == '|' {
			break
		}
		chords = append(chords, p.chord())
	}
	if len(chords) == 0 {
		p.fail("expected chord")
	}
	return model.Bar{Chords: chords}
}

// chord := note [qual] [qnum] [add] [sus] [omit] ["/" note]
func (p *parser) chord() model.Chord {
	start := p.pos
	root := p.note()
	quality := p.optionalQuality()
	number, caret := p.optionalNumber()
	addition := p.optionalAddition()
	suspension := p.optionalSuspension()
	omission := p.optionalOmission()
	if quality != "" && suspension != "" {
		p.fail("quality and suspension cannot coexist")
	}
	bass := -1
	if p.peek() == '/' {
		p.pos++
		bass = p.note()
	}
	return model.Chord{
		Label:      strings.TrimSpace(p.s[start:p.pos]),
		RootClass:  root,
		Quality:    quality,
		Suspension: suspension,
		Number:     number,
		Caret:      caret,
		Addition:   addition,
		Omission:   omission,
		BassClass:  bass,
	}
}

// note := letter [acc]
func (p *parser) note() int {
	letter := p.next()
	pc, ok := chord.LetterClass[letter]
	if !ok {
		p.fail("invalid note letter %q", letter)
	}
	if c := p.peek(); c == '#' || c == 'b' {
		p.pos++
		pc += chord.AccOffset[c]
	}
	return ((pc % 12) + 12) % 12
}

func (p *parser) optionalQuality() string {
	switch c := p.peek(); c {
	case '-', '+', 'o', '5':
		p.pos++
		return string(c)
	case '1':
		if n := p.peekAt(1); n == '1' || n == '3' {
			return ""
		}
		p.pos++
		return "1"
	}
	return ""
}

// qnum := "6" | ["^"] ("7" | "9" | "11" | "13")
func (p *parser) optionalNumber() (string, bool) {
	start := p.pos
	caret := false
	if p.peek() == '^' {
		caret = true
		p.pos++
	}
	if !isDigit(p.peek()) {
		p.pos = start
		return "", false
	}
	switch c := p.next(); c {
	case '6':
		if caret {
			p.fail("'^6' is invalid")
		}
		return "6", caret
	case '7', '9':
		return string(c), caret
	case '1':
		if n := p.peek(); n == '1' || n == '3' {
			p.pos++
			return "1" + string(n), caret
		}
	}
	p.pos = start
	return "", false
}

// add := alt | "(" alt ")"
func (p *parser) optionalAddition() *model.Addition {
	start := p.pos
	paren := false
	if p.peek() == '(' {
		paren = true
		p.pos++
	}
	acc, target, ok := p.optionalAlt()
	if !ok {
		p.pos = start
		return nil
	}
	if paren {
		p.expect(')')
	}
	return &model.Addition{Accidental: acc, Target: target, Parenthesized: paren}
}

// alt := [acc] ("5" | "9" | "11" | "13")
func (p *parser) optionalAlt() (string, string, bool) {
	start := p.pos
	acc := ""
	if c := p.peek(); c == '#' || c == 'b' {
		acc = string(c)
		p.pos++
	}
	switch c := p.peek(); c {
	case '5', '9':
		p.pos++
		return acc, string(c), true
	case '1':
		p.pos++
		if n := p.peek(); n == '1' || n == '3' {
			p.pos++
			return acc, "1" + string(n), true
		}
	}
	p.pos = start
	return "", "", false
}

// A bare "sus"/"no" prefix is consumed without backtracking, mirroring the
// validator, so both passes accept the same language.
func (p *parser) optionalSuspension() string {
	if !p.match("sus") {
		return ""
	}
	switch p.peek() {
	case '2':
		p.pos++
		if p.peek() == '4' {
			p.pos++
			return "sus24"
		}
		return "sus2"
	case '4':
		p.pos++
		return "sus4"
	}
	return ""
}

func (p *parser) optionalOmission() string {
	if !p.match("no") {
		return ""
	}
	switch p.peek() {
	case '3':
		p.pos++
		if p.peek() == '5' {
			p.pos++
			return "no35"
		}
		return "no3"
	case '5':
		p.pos++
		return "no5"
	}
	return ""
}
