// Package grammar is the acceptance gate for chord-chart songs. Validate
// answers yes/no against the song grammar and nothing else; building the
// structural representation is the song package's job so the two can be
// tested independently.
package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Violation describes where and how the input breaks the grammar.
type Violation struct {
	Line int
	Pos  int
	Bar  int
	Msg  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("bar %d (line %d, pos %d): %s", v.Bar, v.Line, v.Pos, v.Msg)
}

// Validate reports whether text is a grammar-valid song. It returns nil on
// success and a *Violation otherwise.
func Validate(text string) error {
	v := &validator{s: text}
	return v.run()
}

type validator struct {
	s   string
	pos int
	bar int
}

func (v *validator) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			viol, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			err = viol
		}
	}()
	v.skipWS()
	// An opening bar line is permitted; bars otherwise only end with "|".
	if v.peek() == '|' {
		v.next()
	}
	v.song()
	v.skipWS()
	if v.pos != len(v.s) {
		v.fail("extra input after song")
	}
	return nil
}

func (v *validator) fail(format string, args ...any) {
	panic(&Violation{
		Line: strings.Count(v.s[:v.pos], "\n") + 1,
		Pos:  v.pos,
		Bar:  v.bar,
		Msg:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) peek() byte {
	if v.pos < len(v.s) {
		return v.s[v.pos]
	}
	return 0
}

func (v *validator) peekAt(offset int) byte {
	if v.pos+offset < len(v.s) {
		return v.s[v.pos+offset]
	}
	return 0
}

func (v *validator) next() byte {
	c := v.peek()
	if c != 0 {
		v.pos++
	}
	return c
}

func (v *validator) expect(want byte) {
	got := v.next()
	if got != want {
		if got == 0 {
			v.fail("expected %q but got end of input", want)
		}
		v.fail("expected %q but got %q", want, got)
	}
}

func (v *validator) skipWS() {
	for {
		c := v.peek()
		if c != ' ' && c != '\t' && c != '\n' {
			return
		}
		v.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// song := bar {bar} "|"
func (v *validator) song() {
	v.barRule()
	for {
		v.skipWS()
		if v.peek() == '|' {
			v.next()
			return
		}
		v.barRule()
	}
}

// bar := [meter] chords "|"
func (v *validator) barRule() {
	v.bar++
	v.skipWS()
	if isDigit(v.peek()) {
		v.meter()
	}
	v.chords()
	v.skipWS()
	v.expect('|')
}

func (v *validator) meter() {
	v.numerator()
	v.expect('/')
	v.denominator()
}

func (v *validator) numerator() {
	digits := v.consumeDigits()
	if digits == "" {
		v.fail("expected numerator")
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 15 {
		v.fail("numerator %s out of range", digits)
	}
}

func (v *validator) denominator() {
	digits := v.consumeDigits()
	if digits == "" {
		v.fail("expected denominator")
	}
	n, err := strconv.Atoi(digits)
	if err != nil || (n != 1 && n != 2 && n != 4 && n != 8 && n != 16) {
		v.fail("invalid denominator %s", digits)
	}
}

func (v *validator) consumeDigits() string {
	start := v.pos
	for isDigit(v.peek()) {
		v.pos++
	}
	return v.s[start:v.pos]
}

// chords := "NC" | "%" | chord {chord}
func (v *validator) chords() {
	v.skipWS()
	if strings.HasPrefix(v.s[v.pos:], "NC") {
		v.pos += 2
		return
	}
	if v.peek() == '%' {
		if v.bar == 1 {
			v.fail("repeat bar with nothing to repeat")
		}
		v.next()
		return
	}
	v.chord()
	for {
		v.skipWS()
		c := v.peek()
		if c == '|' || c == 0 {
			return
		}
		v.chord()
	}
}

// chord := note [qual] [qnum] [add] [sus] [omit] ["/" note]
func (v *validator) chord() {
	v.note()
	hasQual := v.optionalQual()
	v.optionalQnum()
	v.optionalAdd()
	hasSus := v.optionalSus()
	v.optionalOmit()
	if hasQual && hasSus {
		v.fail("quality and suspension cannot coexist")
	}
	if v.peek() == '/' {
		v.next()
		v.note()
	}
}

func (v *validator) note() {
	c := v.next()
	if c == 0 {
		v.fail("expected note but got end of input")
	}
	if c < 'A' || c > 'G' {
		v.fail("invalid note letter %q", c)
	}
	if c := v.peek(); c == '#' || c == 'b' {
		v.next()
	}
}

func (v *validator) optionalQual() bool {
	switch c := v.peek(); c {
	case '-', '+', 'o', '5':
		v.next()
		return true
	case '1':
		// "1" followed by "1" or "3" is an 11/13 extension, not a quality.
		if n := v.peekAt(1); n == '1' || n == '3' {
			return false
		}
		v.next()
		return true
	}
	return false
}

// qnum := "6" | ["^"] ("7" | "9" | "11" | "13")
func (v *validator) optionalQnum() bool {
	start := v.pos
	caret := false
	if v.peek() == '^' {
		caret = true
		v.next()
	}
	if !isDigit(v.peek()) {
		v.pos = start
		return false
	}
	switch c := v.next(); c {
	case '6':
		if caret {
			v.fail("'^6' is invalid")
		}
		return true
	case '7', '9':
		return true
	case '1':
		if n := v.peek(); n == '1' || n == '3' {
			v.next()
			return true
		}
	}
	v.pos = start
	return false
}

// add := alt | "(" alt ")"
func (v *validator) optionalAdd() bool {
	start := v.pos
	paren := false
	if v.peek() == '(' {
		paren = true
		v.next()
	}
	if !v.optionalAlt() {
		v.pos = start
		return false
	}
	if paren {
		v.expect(')')
	}
	return true
}

// alt := [acc] ("5" | "9" | "11" | "13")
func (v *validator) optionalAlt() bool {
	start := v.pos
	if c := v.peek(); c == '#' || c == 'b' {
		v.next()
	}
	switch c := v.peek(); c {
	case '5', '9':
		v.next()
		return true
	case '1':
		v.next()
		if n := v.peek(); n == '1' || n == '3' {
			v.next()
			return true
		}
	}
	v.pos = start
	return false
}

// A bare "sus" prefix is consumed even when no 2/4 follows; the original
// grammar never backtracks it.
func (v *validator) optionalSus() bool {
	if !strings.HasPrefix(v.s[v.pos:], "sus") {
		return false
	}
	v.pos += 3
	switch v.peek() {
	case '2':
		v.next()
		if v.peek() == '4' {
			v.next()
		}
		return true
	case '4':
		v.next()
		return true
	}
	return false
}

// Same non-backtracking treatment for a bare "no" prefix.
func (v *validator) optionalOmit() bool {
	if !strings.HasPrefix(v.s[v.pos:], "no") {
		return false
	}
	v.pos += 2
	switch v.peek() {
	case '3':
		v.next()
		if v.peek() == '5' {
			v.next()
		}
		return true
	case '5':
		v.next()
		return true
	}
	return false
}
