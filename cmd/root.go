package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordid",
	Short: "Names chords from note names or scale degrees",
	Long: `chordid names the chord spelled by a set of notes (C E G -> "C Major"),
or by major-scale degrees of a key (1 3 5 in C -> "C Major"), with
inversion and slash-chord handling. It also runs as an HTTP service.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
