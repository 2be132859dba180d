package constants

// NotesFileSuffix is appended to the song's base name for the companion file.
const NotesFileSuffix = "_notes.txt"

// SongFileExts are the extensions gathered when validating a directory.
var SongFileExts = []string{".song", ".txt"}

// Bars without an explicit meter annotation are 4/4.
const (
	DefaultMeterNumerator   = 4
	DefaultMeterDenominator = 4
)

const DefaultServeAddr = ":8080"

// MIDI export settings.
const (
	TicksPerQuarter = 960
	ExportTempoBPM  = 120

	// Chords are voiced as block chords in the octave starting at middle C.
	ExportBaseNote = 60
	ExportVelocity = 100
)
