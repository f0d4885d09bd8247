// twistcube - interactive 3x3 twisty puzzle for the terminal.
package main

import (
	"github.com/rowanmaddox/twistcube/internal/cli"
)

func main() {
	cli.Execute()
}
