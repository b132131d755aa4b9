package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/turnforge/hexcore/hexgrid"
)

var (
	cfgFile  string
	width    int32
	height   int32
	maxDepth int
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "hexctl",
	Short:        "hexctl queries a staggered hex-tile grid and its pathfinder",
	SilenceUsage: true,
	Long: `hexctl is a command-line consumer of the hexgrid and pathfinder
libraries. It exercises neighbour lookups, screen/tile conversions and
bounded A* pathfinding against one long-lived grid.

Examples:
  hexctl neighbors 3 4
  hexctl screen 3 4
  hexctl tile 112 60
  hexctl path 0 0 4 4 --smooth
  hexctl repl

Global Flags:
  --width int         grid width in tiles (env: HEXCTL_WIDTH)
  --height int        grid height in tiles (env: HEXCTL_HEIGHT)
  --max-depth int     pathfinder expansion cap (env: HEXCTL_MAX_DEPTH)
  --verbose           emit slog debug diagnostics`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hexctl.yaml)")
	rootCmd.PersistentFlags().Int32Var(&width, "width", 200, "grid width in tiles (env: HEXCTL_WIDTH)")
	rootCmd.PersistentFlags().Int32Var(&height, "height", 200, "grid height in tiles (env: HEXCTL_HEIGHT)")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 5000, "pathfinder expansion cap (env: HEXCTL_MAX_DEPTH)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "emit slog debug diagnostics")

	viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	viper.BindPFlag("height", rootCmd.PersistentFlags().Lookup("height"))
	viper.BindPFlag("max-depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("hexctl")
	}

	viper.SetEnvPrefix("HEXCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && isVerbose() {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func logger() *slog.Logger {
	level := slog.LevelInfo
	if isVerbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func gridWidth() int32 {
	if v := viper.GetInt32("width"); v > 0 {
		return v
	}
	return width
}

func gridHeight() int32 {
	if v := viper.GetInt32("height"); v > 0 {
		return v
	}
	return height
}

func pathMaxDepth() int {
	if v := viper.GetInt("max-depth"); v > 0 {
		return v
	}
	return maxDepth
}

func newGrid() hexgrid.TileGrid {
	return hexgrid.NewTileGrid(gridWidth(), gridHeight())
}
