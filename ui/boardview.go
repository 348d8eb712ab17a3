// Package ui renders a Gomoku session in the terminal with tview and turns key and
// mouse input into session calls.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/board"
	"gomoku-local/config"
	"gomoku-local/engine"
	"gomoku-local/game"
	"gomoku-local/logging"
	"gomoku-local/types"
)

// Indices into BoardView.styles.
const (
	styleBoard = iota
	styleBlack
	styleWhite
	styleLine
	styleCursor
	styleHover
	styleLastPlayed
)

// coordWidth is the number of screen columns left of the board for row labels.
const coordWidth = 4

type BoardView struct {
	Box       *tview.Box
	session   *game.Session
	hint      *tview.TextView
	cfg       *config.Config
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	selX      int
	selY      int
	hover     types.Pos
	hovering  bool

	// Screen cell of intersection (0, 0), as of the last draw.
	left int
	top  int

	pieces  pieceLayer
	overlay overlayLayer
}

// pieceLayer caches the cell snapshot the renderer paints stones from.
type pieceLayer struct {
	valid bool
	cells []types.CellState
}

func (l *pieceLayer) get(b *board.Board) []types.CellState {
	if !l.valid {
		l.cells = b.Cells()
		l.valid = true
	}
	return l.cells
}

// overlayLayer caches the last move marker.
type overlayLayer struct {
	valid   bool
	last    types.Move
	hasLast bool
}

func (l *overlayLayer) get(b *board.Board) (types.Move, bool) {
	if !l.valid {
		l.last, l.hasLast = b.LastMove()
		l.valid = true
	}
	return l.last, l.hasLast
}

// NewBoardView creates the board widget. A session must be attached with SetSession
// before anything is drawn.
func NewBoardView(c *config.Config, hint *tview.TextView) *BoardView {
	g := &BoardView{
		Box:  tview.NewBox(),
		hint: hint,
		selX: -1,
		selY: -1,
	}
	g.SetConfig(c)
	g.Box.SetDrawFunc(g.draw)
	g.Box.SetMouseCapture(g.handleMouse)
	return g
}

// SetSession attaches s to the view and subscribes to its changes.
func (g *BoardView) SetSession(s *game.Session) {
	g.session = s
	if g.infoPanel != nil {
		g.infoPanel.SetSession(s)
	}
	g.invalidate()
	g.ResetSelection()
	g.hovering = false

	s.Board.OnChange(g.invalidate)
	s.Turn.OnMove(func(m types.Move) {
		logging.Debugf("BoardView: %s played %v", m.Color, m.Pos)
		g.refreshHint()
	})
	s.Turn.OnGameEnd(func(v engine.Verdict) {
		logging.Debugf("BoardView: game over: %s", v)
		g.ResetSelection()
		g.refreshHint()
	})
	g.refreshHint()
}

// Session returns the attached session.
func (g *BoardView) Session() *game.Session {
	return g.session
}

// invalidate drops the cached layers; they are rebuilt on the next draw.
func (g *BoardView) invalidate() {
	g.pieces.valid = false
	g.overlay.valid = false
	if g.infoPanel != nil {
		g.infoPanel.Refresh()
	}
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardView) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardView) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardView) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardView) SelectedTile() *types.Pos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.Pos{Col: g.selX, Row: g.selY}
}

func (g *BoardView) MoveSelection(h, v int) {
	if g.session == nil {
		return
	}
	size := g.session.Board.CellsPerRow()
	if g.SelectedTile() == nil {
		if last, ok := g.session.Board.LastMove(); ok {
			g.selX, g.selY = last.Pos.Col, last.Pos.Row
		} else {
			// No previous move made, use board center
			g.selX, g.selY = size/2, size/2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= size {
		return
	}
	if g.selY+v < 0 || g.selY+v >= size {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardView) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// PlaySelected plays the next chess at the selected intersection.
func (g *BoardView) PlaySelected() {
	sel := g.SelectedTile()
	if sel == nil || g.session == nil {
		return
	}
	g.session.PlayIndex(g.session.Board.PosToIndex(*sel))
}

// Undo takes back the last move.
func (g *BoardView) Undo() {
	if g.session == nil {
		return
	}
	if err := g.session.Undo(); err != nil {
		logging.Debugf("BoardView: %v", err)
		return
	}
	g.refreshHint()
}

// Clear starts the session over on an empty board.
func (g *BoardView) Clear() {
	if g.session == nil {
		return
	}
	g.session.Clear()
	g.ResetSelection()
	g.refreshHint()
}

// surfacePoint converts a screen cell to a position on the board surface, in the
// board's pixel units. Intersections are two screen columns apart and one row apart.
func surfacePoint(geom board.Geometry, left, top, mx, my int) (float64, float64) {
	x := geom.Padding + float64(mx-left)/2*geom.CellSize
	y := geom.Padding + float64(my-top)*geom.CellSize
	return x, y
}

func (g *BoardView) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if g.session == nil || event == nil {
		return action, event
	}
	mx, my := event.Position()
	if !g.Box.InRect(mx, my) {
		if g.hovering {
			g.hovering = false
			return tview.MouseConsumed, nil
		}
		return action, event
	}
	x, y := surfacePoint(g.session.Board.Geometry(), g.left, g.top, mx, my)

	switch action {
	case tview.MouseMove:
		g.hover, g.hovering = g.session.Hover(x, y)
		return tview.MouseConsumed, nil
	case tview.MouseLeftDown:
		g.ResetSelection()
		g.session.Press(x, y)
		g.hover, g.hovering = g.session.Hover(x, y)
		return tview.MouseConsumed, nil
	}
	return action, event
}

func (g *BoardView) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	if g.session == nil {
		return x, y, 1, 1
	}
	b := g.session.Board
	size := b.CellsPerRow()
	g.left, g.top = x+coordWidth, y

	cells := g.pieces.get(b)
	last, hasLast := g.overlay.get(b)
	symbols := g.cfg.Theme.Symbols

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := cells[col+row*size]
			bg := g.styles[styleBoard]
			var fg tcell.Color
			var drawRune rune

			switch cell {
			case types.BlackCell:
				drawRune, fg = symbols.BlackStone, g.styles[styleBlack]
			case types.WhiteCell:
				drawRune, fg = symbols.WhiteStone, g.styles[styleWhite]
			default:
				drawRune, fg = getGridRune(col, row, size, size, isHoshiPoint(col, row, size)), g.styles[styleLine]
			}
			if hasLast && last.Pos.Col == col && last.Pos.Row == row {
				drawRune = symbols.LastPlayed
			}

			if col == g.selX && row == g.selY && g.cfg.Theme.DrawCursorBackground {
				bg = g.styles[styleCursor]
			} else if g.hovering && g.hover.Col == col && g.hover.Row == row {
				bg = g.styles[styleHover]
				if cell == types.Empty {
					drawRune = symbols.Hover
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			if cell == types.Empty {
				hasStoneRight := col < size-1 && cells[col+1+row*size] != types.Empty
				drawGridCell(screen, style, drawRune, col, row, g.left, g.top, size, hasStoneRight)
			} else {
				drawStoneCell(screen, style, drawRune, col, row, g.left, g.top)
			}
		}
	}
	g.drawCoordinates(screen, x, y, size, last, hasLast)
	return x, y, size*2 + coordWidth, size + 2
}

func (g *BoardView) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // styleLine
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursor
		tcell.PaletteColor(c.Theme.Colors.HoverColorBG),      // styleHover
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
	}
	g.cfg = c
}

func (g *BoardView) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.Refresh()
	}
	if g.hint == nil || g.session == nil {
		return
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var turnLine, controlsLine string
	if g.session.Turn.Finished() {
		turnLine = fmt.Sprintf("  Game over: %s\n", g.session.Turn.Verdict())
		controlsLine = "  u undo   c new game   q menu"
	} else {
		stone := "●"
		if g.session.Turn.ToMove() == types.White {
			stone = "○"
		}
		turnLine = fmt.Sprintf("  %s %s to move\n", stone, g.session.Turn.ToMove())
		controlsLine = "  click/⏎ play   hjkl/↑↓←→ move   u undo   c clear   f focus   q quit"
	}
	g.hint.SetText(turnLine + controlsLine)
}

// drawStoneCell draws a stone cell (2 characters wide)
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	// Position 1: space (stone covers the area, no line)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawGridCell draws a cell using box-drawing characters for grid lines
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t, boardWidth int, hasStoneRight bool) {
	// 2-char cell: [intersection][right-line]
	s.SetContent(l+x*2, t+y, r, nil, c)

	rightConn := '─'
	if x == boardWidth-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+x*2+1, t+y, rightConn, nil, c)
}

// getGridRune returns the appropriate box-drawing character for a grid position
func getGridRune(x, y, width, height int, isHoshi bool) rune {
	if isHoshi {
		return '◦'
	}

	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// isHoshiPoint checks if a position is one of the five marked points of a 15x15 board.
func isHoshiPoint(x, y, boardSize int) bool {
	if boardSize != 15 {
		return false
	}
	for _, pos := range [][2]int{{3, 3}, {3, 11}, {7, 7}, {11, 3}, {11, 11}} {
		if x == pos[0] && y == pos[1] {
			return true
		}
	}
	return false
}

func (g *BoardView) drawCoordinates(s tcell.Screen, x, y, size int, last types.Move, hasLast bool) {
	hCoord := int('A')
	if g.cfg.Theme.FullWidthLetters {
		hCoord = int('Ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[styleCursor])
	lpHighlight := tcell.StyleDefault.Background(g.styles[styleLastPlayed])

	for ix := 0; ix < size; ix++ {
		_style := style
		if ix == g.selX {
			_style = highlight
		} else if hasLast && ix == last.Pos.Col {
			_style = lpHighlight
		}
		letter := hCoord + ix
		if ix >= 8 {
			letter++ // Skip 'I'
		}
		s.SetContent(x+coordWidth+(ix*2), y+size+1, rune(letter), nil, _style)
		s.SetContent(x+coordWidth+(ix*2)+1, y+size+1, ' ', nil, _style)
	}

	for row := 0; row < size; row++ {
		_style := style
		if row == g.selY {
			_style = highlight
		} else if hasLast && row == last.Pos.Row {
			_style = lpHighlight
		}
		displayNum := size - row
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+row, tensRune, nil, _style)
		s.SetContent(x+2, y+row, rune('0'+(displayNum%10)), nil, _style)
	}
}
