// Command hexctl is a thin CLI consumer of the hexgrid and pathfinder
// packages. It owns presentation and flag plumbing only; it never
// reimplements grid geometry.
package main

import (
	"fmt"
	"os"

	"github.com/turnforge/hexcore/cmd/hexctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
