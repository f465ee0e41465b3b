// Command askrank ranks a newline-separated list by asking you one pairwise
// question at a time, using as few questions as the merge-insertion schedule allows.
//
// By default the list is read from the clipboard and the ranked list is written
// back to it, so a spreadsheet column can be copied, ranked and pasted back.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&rootOptions{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "askrank:", err)
		os.Exit(1)
	}
}
