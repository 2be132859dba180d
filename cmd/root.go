package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "musical-grammar",
	Short: "Chord-chart grammar validator and pitch-class calculator",
	Long: `Validates chord-chart song files against the song grammar and, for
valid files, prints a pitch-class histogram and writes a companion notes file.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
