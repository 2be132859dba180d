package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aguilarcarboni/musical-grammar/file"
	"github.com/aguilarcarboni/musical-grammar/grammar"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <song-file-or-dir>",
	Short: "Checks songs against the grammar",
	Long:  `Checks one song file, or every file in a directory, against the grammar.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validate(args[0])
	},
}

func validate(target string) error {
	paths, err := file.SongPaths(target)
	if err != nil {
		return err
	}

	allValid := true
	fmt.Println("--------------------------------")
	for _, path := range paths {
		fmt.Printf("Parsing song: %v\n", file.BaseName(path))
		text, err := file.ReadSong(path)
		if err != nil {
			return err
		}
		if err := grammar.Validate(text); err != nil {
			fmt.Printf("Song invalid: %v\n", err)
			allValid = false
		} else {
			fmt.Println("Song valid.")
		}
		fmt.Println("--------------------------------")
	}

	if !allValid {
		return errors.New("one or more songs are invalid")
	}
	return nil
}
