package cmd

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/parse"
)

var (
	identifyKey          string
	identifyNoInversions bool
	labelFlag            bool

	numericKey          string
	numericNoInversions bool
)

func init() {
	identifyCmd.Flags().StringVar(&identifyKey, "key", "", "key context (reserved, not used by matching)")
	identifyCmd.Flags().BoolVar(&identifyNoInversions, "no-inversions", false, "name inversions by root position only")
	identifyCmd.Flags().BoolVar(&labelFlag, "label", false, "label inversions (first/second/third) instead of slash notation")
	rootCmd.AddCommand(identifyCmd)

	numericCmd.Flags().StringVar(&numericKey, "key", "C", "major key the degrees are taken from")
	numericCmd.Flags().BoolVar(&numericNoInversions, "no-inversions", false, "name inversions by root position only")
	rootCmd.AddCommand(numericCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify [notes...]",
	Short: "Identify a chord from note names",
	Long:  `Identify a chord from note names, first note lowest: chordid identify C E G`,
	Run: func(cmd *cobra.Command, args []string) {
		notes := parse.Notes(strings.Join(args, " "))

		var res model.Result
		if labelFlag {
			res = chord.MatchWithInversion(notes, identifyKey)
		} else {
			res = chord.Match(notes, identifyKey, !identifyNoInversions)
		}
		fmt.Println(res.Display)

		if res.Kind == model.KindInvalidNote {
			printSuggestions(notes)
		}
	},
}

var numericCmd = &cobra.Command{
	Use:   "numeric [degrees...]",
	Short: "Identify a chord from major scale degrees",
	Long:  `Identify a chord from major scale degrees of a key: chordid numeric 1 3 5 --key C`,
	Run: func(cmd *cobra.Command, args []string) {
		degrees, err := parse.NumericNotes(strings.Join(args, " "))
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		fmt.Println(chord.IdentifyNumeric(degrees, numericKey, !numericNoInversions))
	},
}

func printSuggestions(notes model.Notes) {
	for _, n := range notes {
		if _, ok := note.IndexOf(note.Normalize(n)); ok {
			continue
		}
		if suggestion := closestNoteName(n); suggestion != "" {
			fmt.Printf("invalid note %q, did you mean %q?\n", n, suggestion)
		} else {
			fmt.Printf("invalid note %q\n", n)
		}
	}
}

// closestNoteName scores the token against every accepted spelling and
// returns the best one, or "" when nothing is close enough to suggest.
func closestNoteName(token string) string {
	jw := metrics.NewJaroWinkler()
	var best string
	var bestScore float64
	for _, name := range note.AllNames() {
		if score := strutil.Similarity(token, name, jw); score > bestScore {
			bestScore = score
			best = name
		}
	}
	if bestScore < 0.7 {
		return ""
	}
	return best
}
