package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turnforge/hexcore/hexgrid"
)

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <x> <y>",
	Short: "Print the six neighbours of a tile",
	Args:  cobra.ExactArgs(2),
	RunE:  runNeighbors,
}

func init() {
	rootCmd.AddCommand(neighborsCmd)
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return fmt.Errorf("invalid tile coordinate: %w", err)
	}

	log := logger()
	grid := newGrid()
	log.Debug("neighbors", "pos", p)

	bold := color.New(color.Bold)
	for _, dir := range hexgrid.Directions {
		neighbor, ok := grid.Go(p, dir, 1)
		label := bold.Sprint(dir.String())
		if !ok {
			fmt.Printf("%s: out of bounds\n", label)
			continue
		}
		fmt.Printf("%s: %s\n", label, color.CyanString("(%d,%d)", neighbor.X, neighbor.Y))
	}
	return nil
}

func parsePoint(xs, ys string) (hexgrid.Point, error) {
	x, err := strconv.ParseInt(xs, 10, 32)
	if err != nil {
		return hexgrid.Point{}, fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseInt(ys, 10, 32)
	if err != nil {
		return hexgrid.Point{}, fmt.Errorf("parsing y: %w", err)
	}
	return hexgrid.Point{X: int32(x), Y: int32(y)}, nil
}
