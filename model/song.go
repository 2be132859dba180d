package model

// Meter is an explicit time-signature annotation on a bar. A meter stays in
// effect for following bars until another one is written.
type Meter struct {
	Numerator   int
	Denominator int
}

// Addition is an "(alt)" style extra tone: an optional accidental plus a
// target degree ("5", "9", "11" or "13"). Parenthesized additions never imply
// a seventh.
type Addition struct {
	Accidental    string
	Target        string
	Parenthesized bool
}

// Chord holds one chord symbol plus everything needed to compute its notes.
type Chord struct {
	// Label is the symbol exactly as written in the song, e.g. "C-7/Bb".
	Label string

	RootClass int

	// Quality is "-", "+", "o", "5", "1" or "" (major).
	Quality string

	// Suspension is "sus2", "sus4", "sus24" or "".
	Suspension string

	// Number is "6", "7", "9", "11", "13" or ""; Caret marks "^" (major 7th).
	Number string
	Caret  bool

	Addition *Addition

	// Omission is "no3", "no5", "no35" or "".
	Omission string

	// BassClass is the slash-bass pitch class, or -1 when absent.
	BassClass int
}

// Bar groups the chords of one measure. A repeat bar ("%") and a no-chord bar
// ("NC") both carry no chords; IsRepeat tells them apart.
type Bar struct {
	Meter    *Meter
	Chords   []Chord
	IsRepeat bool
}

// Song is the ordered list of bars between the opening bar line and the
// closing double bar.
type Song struct {
	Bars []Bar
}
