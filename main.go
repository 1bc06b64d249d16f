// Package main is the entry point of the textoffset CLI, which finds
// substrings at or after an offset and reports positions relative to the
// start of the whole text.
package main

import "textoffset/cmd"

func main() {
	cmd.Execute()
}
