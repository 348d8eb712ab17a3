package config

import "gomoku-local/engine"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		FullWidthLetters:     false,
		Colors: ConfigColors{
			BoardColor:        180,
			BlackColor:        232,
			WhiteColor:        255,
			LineColor:         94,
			CursorColorBG:     4,
			HoverColorBG:      109,
			LastPlayedColorBG: 2,
		},
		Symbols: ConfigSymbols{
			BlackStone: '●',
			WhiteStone: '●',
			LastPlayed: '◉',
			Hover:      '╋',
		},
	}

	game := engine.DefaultConfig()
	DefaultConfig = Config{
		Theme: DefaultTheme,
		Board: BoardConfig{
			Geometry:     game.Geometry,
			HitTolerance: game.HitTolerance,
		},
	}
}
