package board

import (
	"fmt"
	"math"

	"gomoku-local/types"
)

// Geometry is the pixel layout of a board. It is fixed when the board is created.
type Geometry struct {
	CellsPerRow int     `json:"cells_per_row"`
	Padding     float64 `json:"padding"`    // offset of the first grid line
	CellSize    float64 `json:"cell_size"`  // spacing between grid lines
	ChessSize   float64 `json:"chess_size"` // diameter of a placed chess
	LineWidth   float64 `json:"line_width"`
}

// MaxCellsPerRow is the largest board that display vertices (A-Z without I) and SGF
// coordinates can address.
const MaxCellsPerRow = 25

// DefaultGeometry returns the standard 15x15 layout.
func DefaultGeometry() Geometry {
	return Geometry{
		CellsPerRow: 15,
		Padding:     45.0,
		CellSize:    48.0,
		ChessSize:   42.0,
		LineWidth:   2.0,
	}
}

// GridSize is the pixel length of a grid line.
func (g Geometry) GridSize() float64 {
	return float64(g.CellsPerRow-1)*g.CellSize + g.LineWidth
}

// Capacity is the number of intersections.
func (g Geometry) Capacity() int {
	return g.CellsPerRow * g.CellsPerRow
}

// Validate checks that the geometry can describe a drawable board.
func (g Geometry) Validate() error {
	if g.CellsPerRow < 2 || g.CellsPerRow > MaxCellsPerRow {
		return fmt.Errorf("cells per row must be in [2, %d], got %d", MaxCellsPerRow, g.CellsPerRow)
	}
	if g.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %g", g.CellSize)
	}
	if g.ChessSize <= 0 || g.ChessSize > g.CellSize {
		return fmt.Errorf("chess size must be in (0, %g], got %g", g.CellSize, g.ChessSize)
	}
	if g.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %g", g.LineWidth)
	}
	if g.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %g", g.Padding)
	}
	return nil
}

// Intersection returns the pixel centre of the intersection at p.
func (g Geometry) Intersection(p types.Pos) (x, y float64) {
	return g.Padding + float64(p.Col)*g.CellSize, g.Padding + float64(p.Row)*g.CellSize
}

// GridPos maps a pixel position to the nearest intersection. The position is accepted
// only within toleranceScale/2 cell widths of that intersection.
//
// The first row and column are never returned: a hit resolving to col 0 or row 0 is
// rejected. They stay reachable through keyboard selection.
func (g Geometry) GridPos(x, y, toleranceScale float64) (types.Pos, bool) {
	dx := x - g.Padding
	dy := y - g.Padding
	col := int(math.Round(dx / g.CellSize))
	row := int(math.Round(dy / g.CellSize))
	if col <= 0 || row <= 0 || !g.validPos(col, row) {
		return types.Pos{}, false
	}
	dis := math.Hypot(dx-float64(col)*g.CellSize, dy-float64(row)*g.CellSize)
	if dis*2 > g.CellSize*toleranceScale {
		return types.Pos{}, false
	}
	return types.Pos{Col: col, Row: row}, true
}

func (g Geometry) validPos(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.CellsPerRow && row < g.CellsPerRow
}
