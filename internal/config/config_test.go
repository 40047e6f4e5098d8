package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefault_MatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("embedded default drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestParse_PartialOverrideKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  rows: 8\n  columns: 9\n  hex_size: 12\nseed: 42\ninfo_tiles: []\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Grid.Rows != 8 || cfg.Grid.Columns != 9 || cfg.Grid.HexSize != 12 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Window.Width != 1200 || cfg.Window.Height != 768 {
		t.Fatalf("window should keep defaults, got %+v", cfg.Window)
	}
	if len(cfg.InfoTiles) != 0 {
		t.Fatalf("explicit empty info_tiles should clear defaults, got %d", len(cfg.InfoTiles))
	}
}

func TestValidate_InfoTileOutsideGrid(t *testing.T) {
	cfg := Default()
	cfg.InfoTiles = append(cfg.InfoTiles, InfoTileConfig{X: 20, Y: 0, Text: "nope"})
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate_RejectsBadSizes(t *testing.T) {
	cases := map[string]func(*Config){
		"zero rows":     func(c *Config) { c.Grid.Rows = 0 },
		"negative cols": func(c *Config) { c.Grid.Columns = -1 },
		"zero hex size": func(c *Config) { c.Grid.HexSize = 0 },
		"zero width":    func(c *Config) { c.Window.Width = 0 },
		"neg portrait":  func(c *Config) { c.InfoTiles[0].Portrait = -1 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", name, err)
		}
	}
}

func TestLoad_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Title != "Custom" {
		t.Fatalf("title = %q, want Custom", cfg.Window.Title)
	}
}

func TestLoad_CustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing explicit config path")
	}
}

func TestLoad_CustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
