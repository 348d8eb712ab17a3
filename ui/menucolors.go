package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for the setup screen.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	CardBG     tcell.Color // Dark gray field background
	Label      tcell.Color // Light gray for labels
	Hint       tcell.Color // Dim gray for hints
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
}{
	Border:     tcell.PaletteColor(60),
	CardBG:     tcell.PaletteColor(236),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.PaletteColor(60),
	ButtonText: tcell.PaletteColor(255),
}
