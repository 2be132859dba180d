package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aguilarcarboni/musical-grammar/analysis"
	"github.com/aguilarcarboni/musical-grammar/file"
	"github.com/aguilarcarboni/musical-grammar/grammar"
	"github.com/aguilarcarboni/musical-grammar/song"
)

var compactLayout bool

func init() {
	analyzeCmd.Flags().BoolVar(&compactLayout, "compact", false, "use the compact table layout")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <song-file>",
	Short: "Prints the pitch-class histogram of a song and writes its notes file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(args[0])
	},
}

func analyze(path string) error {
	text, err := file.ReadSong(path)
	if err != nil {
		return err
	}
	if err := grammar.Validate(text); err != nil {
		return fmt.Errorf("song invalid: %w", err)
	}

	sng, err := song.Parse(text)
	if err != nil {
		return err
	}
	rows, err := analysis.Expand(sng)
	if err != nil {
		return err
	}

	layout := analysis.Wide
	if compactLayout {
		layout = analysis.Compact
	}
	fmt.Println(analysis.FormatTable(rows, layout))

	lines, err := analysis.NoteLines(sng)
	if err != nil {
		return err
	}
	return file.WriteNotes(file.NotesPath(path), lines)
}
