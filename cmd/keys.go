package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/note"
)

func init() {
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(templatesCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the twelve keys",
	Long:  `List the twelve canonical note names in pitch-class order`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range note.AllKeys() {
			fmt.Println(k)
		}
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the chord template catalog",
	Long:  `List every chord template with its intervals and quality`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range chord.Overview() {
			intervals := make([]string, len(t.Intervals))
			for i, v := range t.Intervals {
				intervals[i] = fmt.Sprintf("%d", v)
			}
			fmt.Printf("%s: {%s} %s\n", t.Name, strings.Join(intervals, ","), t.Quality)
		}
	},
}
