// Puzzlecube - CLI toolkit for NxNxN twisty puzzle cubes.
package main

import (
	"github.com/puzzlecube/puzzlecube/internal/cli"
)

func main() {
	cli.Execute()
}
