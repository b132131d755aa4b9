package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turnforge/hexcore/hexgrid"
	"github.com/turnforge/hexcore/pathfinder"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive loop for repeated neighbour/screen/path queries",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	grid := newGrid()
	pf := pathfinder.New(grid, pathMaxDepth())
	log := logger()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "hexctl> ",
		HistoryFile: "",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("hexctl repl: commands are neighbors, screen, tile, path, quit")
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Println("goodbye")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}
		if command == "quit" || command == "exit" {
			fmt.Println("goodbye")
			return nil
		}

		if err := dispatchReplCommand(grid, pf, log, command); err != nil {
			fmt.Println(color.RedString(err.Error()))
		}
	}
}

func dispatchReplCommand(grid hexgrid.TileGrid, pf *pathfinder.PathFinder, log *slog.Logger, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "neighbors":
		if len(fields) != 3 {
			return fmt.Errorf("usage: neighbors <x> <y>")
		}
		p, err := parsePoint(fields[1], fields[2])
		if err != nil {
			return err
		}
		for _, dir := range hexgrid.Directions {
			if n, ok := grid.Go(p, dir, 1); ok {
				fmt.Printf("%s: (%d,%d)\n", dir, n.X, n.Y)
			} else {
				fmt.Printf("%s: out of bounds\n", dir)
			}
		}

	case "screen":
		if len(fields) != 3 {
			return fmt.Errorf("usage: screen <x> <y>")
		}
		p, err := parsePoint(fields[1], fields[2])
		if err != nil {
			return err
		}
		s := grid.ToScreen(p)
		fmt.Printf("(%d,%d)\n", s.X, s.Y)

	case "tile":
		if len(fields) != 3 {
			return fmt.Errorf("usage: tile <sx> <sy>")
		}
		p, err := parsePoint(fields[1], fields[2])
		if err != nil {
			return err
		}
		t := grid.FromScreen(p)
		fmt.Printf("(%d,%d)\n", t.X, t.Y)

	case "path":
		if len(fields) != 5 {
			return fmt.Errorf("usage: path <fx> <fy> <tx> <ty>")
		}
		from, err := parsePoint(fields[1], fields[2])
		if err != nil {
			return err
		}
		to, err := parsePoint(fields[3], fields[4])
		if err != nil {
			return err
		}
		path := pf.Find(from, to, false, func(hexgrid.Point) pathfinder.TileState {
			return pathfinder.Passable(0)
		})
		log.Debug("repl path", "from", from, "to", to, "steps_expanded", pf.Len())
		if path == nil {
			fmt.Println("no path")
			return nil
		}
		names := make([]string, len(path))
		for i, dir := range path {
			names[i] = dir.String()
		}
		fmt.Println(strings.Join(names, " "))

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
