package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turnforge/hexcore/hexgrid"
	"github.com/turnforge/hexcore/pathfinder"
)

var (
	pathSmooth  bool
	pathBlocked string
)

var pathCmd = &cobra.Command{
	Use:   "path <fx> <fy> <tx> <ty>",
	Short: "Find a path between two tiles and print its direction sequence",
	Args:  cobra.ExactArgs(4),
	RunE:  runPath,
}

func init() {
	pathCmd.Flags().BoolVar(&pathSmooth, "smooth", false, "penalize turns while searching")
	pathCmd.Flags().StringVar(&pathBlocked, "blocked", "", "semicolon-separated list of blocked tiles, e.g. 1,0;2,0")
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	from, err := parsePoint(args[0], args[1])
	if err != nil {
		return fmt.Errorf("invalid from coordinate: %w", err)
	}
	to, err := parsePoint(args[2], args[3])
	if err != nil {
		return fmt.Errorf("invalid to coordinate: %w", err)
	}

	blocked, err := parseBlockedList(pathBlocked)
	if err != nil {
		return fmt.Errorf("invalid --blocked list: %w", err)
	}

	log := logger()
	grid := newGrid()
	pf := pathfinder.New(grid, pathMaxDepth())

	tileState := func(p hexgrid.Point) pathfinder.TileState {
		if blocked[p] {
			return pathfinder.Blocked()
		}
		return pathfinder.Passable(0)
	}

	path := pf.Find(from, to, pathSmooth, tileState)
	log.Debug("path", "from", from, "to", to, "smooth", pathSmooth, "steps_expanded", pf.Len())

	if path == nil {
		fmt.Println(color.RedString("no path"))
		return nil
	}
	if len(path) == 0 {
		fmt.Println(color.YellowString("already there"))
		return nil
	}

	names := make([]string, len(path))
	for i, dir := range path {
		names[i] = dir.String()
	}
	fmt.Println(color.GreenString(strings.Join(names, " ")))
	return nil
}

func parseBlockedList(raw string) (map[hexgrid.Point]bool, error) {
	blocked := map[hexgrid.Point]bool{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return blocked, nil
	}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected x,y but got %q", entry)
		}
		p, err := parsePoint(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		blocked[p] = true
	}
	return blocked, nil
}
