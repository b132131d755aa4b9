package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen <x> <y>",
	Short: "Print the screen-pixel position of a tile",
	Args:  cobra.ExactArgs(2),
	RunE:  runScreen,
}

var tileCmd = &cobra.Command{
	Use:   "tile <sx> <sy>",
	Short: "Print the tile containing a screen-pixel position",
	Args:  cobra.ExactArgs(2),
	RunE:  runTile,
}

func init() {
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(tileCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return fmt.Errorf("invalid tile coordinate: %w", err)
	}
	grid := newGrid()
	screen := grid.ToScreen(p)
	logger().Debug("screen", "tile", p, "screen", screen)
	fmt.Println(color.CyanString("(%d,%d)", screen.X, screen.Y))
	return nil
}

func runTile(cmd *cobra.Command, args []string) error {
	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return fmt.Errorf("invalid screen coordinate: %w", err)
	}
	grid := newGrid()
	tile := grid.FromScreen(p)
	logger().Debug("tile", "screen", p, "tile", tile)
	fmt.Println(color.CyanString("(%d,%d)", tile.X, tile.Y))
	return nil
}
