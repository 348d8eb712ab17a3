package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"gomoku-local/engine"
	"gomoku-local/game"
	"gomoku-local/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box     *tview.TextView
	session *game.Session
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSession sets the session the panel reads from.
func (p *GameInfoPanel) SetSession(s *game.Session) {
	p.session = s
	p.Refresh()
}

// Refresh rebuilds the panel text from the session.
func (p *GameInfoPanel) Refresh() {
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	if p.session == nil {
		return ""
	}
	b := p.session.Board

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Game:[-:-:-] %s\n", p.session.ID.String()[:8])
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", b.MoveCount())
	if p.session.Turn.Finished() {
		text += fmt.Sprintf("[yellow]%s[-]\n", p.session.Turn.Verdict())
	} else {
		text += fmt.Sprintf("[white]Turn:[-:-:-] %s\n", p.session.Turn.ToMove())
	}

	moves := b.Moves()
	if len(moves) == 0 {
		return text
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	// Show last N moves that fit
	maxVisible := 12
	start := 0
	if len(moves) > maxVisible {
		start = len(moves) - maxVisible
	}

	for i := start; i < len(moves); i++ {
		m := moves[i]

		colorStr := "[white]B[-]"
		if m.Color == types.White {
			colorStr = "[dimgray]W[-]"
		}

		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, engine.PosToDisplay(m.Pos, b.CellsPerRow()))
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardView, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardView, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	if board.session != nil {
		infoPanel.SetSession(board.session)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false) // Compact: just 2 rows
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardView) {
	gameFrame.Clear()

	size := 15
	if board.session != nil {
		size = board.session.Board.CellsPerRow()
	}
	boardWidth := size*2 + coordWidth // 2 chars per cell + coordinates
	boardHeight := size + 2           // + coordinates

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
