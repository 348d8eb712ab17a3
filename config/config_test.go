package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	gc := c.GameConfig()
	if gc.Geometry.CellsPerRow != 15 || gc.HitTolerance != 0.6 {
		t.Errorf("unexpected game config: %+v", gc)
	}
	if gc.Geometry.GridSize() != 674 {
		t.Errorf("grid size = %g, want 674", gc.Geometry.GridSize())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"control char stone", func(c *Config) { c.Theme.Symbols.BlackStone = '\t' }},
		{"C1 control hover", func(c *Config) { c.Theme.Symbols.Hover = 130 }},
		{"zero tolerance", func(c *Config) { c.Board.HitTolerance = 0 }},
		{"tiny board", func(c *Config) { c.Board.CellsPerRow = 1 }},
		{"board past Z", func(c *Config) { c.Board.CellsPerRow = 26 }},
		{"chess too big", func(c *Config) { c.Board.ChessSize = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.modify(&c)
			err := c.Validate()
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidConfig, got %v", err)
			}
		})
	}
}

func TestReadCfgFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"board": {"hit_tolerance": 0.8, "padding": 20}, "debug": {"enabled": true}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c := DefaultConfig
	if err := readCfgFile(path, &c); err != nil {
		t.Fatalf("readCfgFile: %v", err)
	}
	if c.Board.HitTolerance != 0.8 || c.Board.Padding != 20 {
		t.Errorf("board section not applied: %+v", c.Board)
	}
	if c.Board.CellSize != 48 || c.Board.CellsPerRow != 15 {
		t.Errorf("unset fields should keep defaults: %+v", c.Board)
	}
	if !c.Debug.Enabled {
		t.Error("debug section not applied")
	}
	if c.Theme.Symbols.BlackStone != '●' {
		t.Errorf("theme should keep defaults, got %q", c.Theme.Symbols.BlackStone)
	}
}

func TestReadCfgFileErrors(t *testing.T) {
	dir := t.TempDir()

	c := DefaultConfig
	if err := readCfgFile(filepath.Join(dir, "missing.json"), &c); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := readCfgFile(bad, &c); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig
	c.Board.HitTolerance = 0.9
	c.Theme.Symbols.Hover = '+'
	if err := saveCfgFile(path, &c, 0664); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}

	var got Config
	if err := readCfgFile(path, &got); err != nil {
		t.Fatalf("readCfgFile: %v", err)
	}
	if got != c {
		t.Errorf("read back %+v, want %+v", got, c)
	}
}

func TestDebugLogPathOverride(t *testing.T) {
	c := DefaultConfig
	c.Debug.LogPath = "/tmp/custom.log"
	path, err := c.DebugLogPath()
	if err != nil || path != "/tmp/custom.log" {
		t.Errorf("DebugLogPath() = %q, %v", path, err)
	}
}
