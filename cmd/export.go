package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aguilarcarboni/musical-grammar/file"
	"github.com/aguilarcarboni/musical-grammar/grammar"
	"github.com/aguilarcarboni/musical-grammar/midi"
	"github.com/aguilarcarboni/musical-grammar/song"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output MIDI path (default <song>.mid next to the input)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <song-file>",
	Short: "Exports a song's chords as a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return export(args[0])
	},
}

func export(path string) error {
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

	out := exportOut
	if out == "" {
		out = filepath.Join(filepath.Dir(path), file.BaseName(path)+".mid")
	}
	if err := midi.WriteSongFile(sng, out); err != nil {
		return err
	}
	fmt.Printf("Wrote MIDI to %v\n", out)
	return nil
}
