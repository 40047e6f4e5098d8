// hextiles is a hex-grid tile game.
//
// Usage:
//
//	hextiles [--config path] [--seed n] [--log-level level]
//
// Controls:
//
//	Arrows   - Move the cursor
//	Click    - Select or deselect a tile
//	Enter    - Open the info window on a special tile
//	Escape   - Close the info window
//	C        - Copy the latest tooltip (or info text) to the clipboard
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/hextiles/internal/config"
	"github.com/Garsondee/hextiles/internal/events"
	"github.com/Garsondee/hextiles/internal/game"
	"github.com/Garsondee/hextiles/internal/hexgrid"
	"github.com/Garsondee/hextiles/internal/screen"
)

// boardMargin is the gap between the window edge and the board.
const boardMargin = 24

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "hextiles",
	Short:         "Hex Tiles - select and resolve tiles on a hex board",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for terrain (0 = use config, then time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hextiles",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- terrain is cosmetic

	logger.Info("creating game tiles", "rows", cfg.Grid.Rows, "columns", cfg.Grid.Columns, "seed", seed)
	tiles := game.CreateGameTiles(cfg.Grid.Rows, cfg.Grid.Columns, rng)

	info := make([]game.InfoTile, 0, len(cfg.InfoTiles))
	for _, it := range cfg.InfoTiles {
		info = append(info, game.InfoTile{Coord: game.Coord{X: it.X, Y: it.Y}, Text: it.Text, Portrait: it.Portrait})
	}
	st := game.NewState(cfg.Grid.Rows, cfg.Grid.Columns, tiles, info)

	grid := hexgrid.NewRectangle(cfg.Grid.Columns, cfg.Grid.Rows, cfg.Grid.HexSize)
	grid.Offset = hexgrid.Point{X: boardMargin, Y: boardMargin}

	renderer := game.NewRenderer(grid, float64(cfg.Window.Width), float64(cfg.Window.Height))
	messages := screen.NewMessageLog(logger)
	session := game.NewSession(st, grid, renderer, messages, logger)

	dispatcher := &events.Dispatcher{}
	if err := dispatcher.Subscribe(session); err != nil {
		return err
	}
	if err := session.Start(); err != nil {
		return err
	}

	host, err := screen.New(session, dispatcher, messages, cfg.Grid.HexSize, cfg.Window.Width, cfg.Window.Height, logger)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	return ebiten.RunGame(host)
}
