package main

import (
	"github.com/jsphweid/chordid/cmd"
)

func main() {
	cmd.Execute()
}
