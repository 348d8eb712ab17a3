package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"gomoku-local/board"
	"gomoku-local/engine"
)

var (
	cfgFile = "gomoku-local/config.json"
	logFile = "gomoku-local/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	LineColor         int `json:"line"`
	CursorColorBG     int `json:"cursor_bg"`
	HoverColorBG      int `json:"hover_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone rune `json:"black"`
	WhiteStone rune `json:"white"`
	LastPlayed rune `json:"last_played"`
	Hover      rune `json:"hover"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	FullWidthLetters     bool          `json:"fullwidth_letters"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// BoardConfig holds the board layout and the click tolerance.
type BoardConfig struct {
	board.Geometry
	HitTolerance float64 `json:"hit_tolerance"`
}

// DebugConfig controls the debug log file.
type DebugConfig struct {
	Enabled bool   `json:"enabled"`
	LogPath string `json:"log_path"` // empty means the XDG cache directory
}

type Config struct {
	Theme Theme       `json:"theme"`
	Board BoardConfig `json:"board"`
	Debug DebugConfig `json:"debug"`
}

// InitConfig loads the user's config file over the defaults, if one exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.LastPlayed, c.Theme.Symbols.Hover} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if err := c.GameConfig().Validate(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// GameConfig returns the engine configuration described by the board section.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Geometry:     c.Board.Geometry,
		HitTolerance: c.Board.HitTolerance,
	}
}

// DebugLogPath returns where debug output goes.
func (c *Config) DebugLogPath() (string, error) {
	if c.Debug.LogPath != "" {
		return c.Debug.LogPath, nil
	}
	return xdg.CacheFile(logFile)
}

// Save writes the config to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}
