// Package config loads the game configuration from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed defaults/hextiles.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full game configuration.
type Config struct {
	Window    WindowConfig     `yaml:"window"`
	Grid      GridConfig       `yaml:"grid"`
	Seed      int64            `yaml:"seed"`
	InfoTiles []InfoTileConfig `yaml:"info_tiles"`
}

// WindowConfig sizes the host window; the info window overlay covers it.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig sizes the hex board.
type GridConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	HexSize float64 `yaml:"hex_size"`
}

// InfoTileConfig places one info tile.
type InfoTileConfig struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Text     string `yaml:"text"`
	Portrait int    `yaml:"portrait"`
}

// Default returns the hardcoded defaults, matching defaults/hextiles.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1200, Height: 768, Title: "Hex Tiles"},
		Grid:   GridConfig{Rows: 20, Columns: 20, HexSize: 20},
		InfoTiles: []InfoTileConfig{
			{X: 5, Y: 5, Text: "Some info", Portrait: 0},
			{X: 7, Y: 7, Text: "Some OTHER info", Portrait: 3},
		},
	}
}

// Validate checks sizes and that every info tile sits on the grid.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Grid.Rows <= 0 || c.Grid.Columns <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalid, c.Grid.Columns, c.Grid.Rows)
	}
	if c.Grid.HexSize <= 0 {
		return fmt.Errorf("%w: hex_size %v", ErrInvalid, c.Grid.HexSize)
	}
	for i, it := range c.InfoTiles {
		if it.X < 0 || it.X >= c.Grid.Columns || it.Y < 0 || it.Y >= c.Grid.Rows {
			return fmt.Errorf("%w: info_tiles[%d] at (%d,%d) is outside the %dx%d grid",
				ErrInvalid, i, it.X, it.Y, c.Grid.Columns, c.Grid.Rows)
		}
		if it.Portrait < 0 {
			return fmt.Errorf("%w: info_tiles[%d] portrait %d", ErrInvalid, i, it.Portrait)
		}
	}
	return nil
}
