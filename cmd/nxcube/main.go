// nxcube - CLI application for scrambling, playing and analyzing NxNxN cubes.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Main()
}
