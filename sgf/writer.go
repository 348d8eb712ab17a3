// Package sgf implements SGF FF[4] encoding and decoding of Gomoku (GM[4]) game records.
// Records live in memory; nothing here touches the filesystem.
package sgf

import (
	"fmt"
	"strings"
	"time"

	"gomoku-local/types"
)

// GameRecord tracks a game in progress and renders it as SGF.
type GameRecord struct {
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	moves       []string // ";B[hh]", ";W[hi]", ...
}

// NewGameRecord creates an empty record for a board of the given size.
func NewGameRecord(boardSize int, date time.Time) *GameRecord {
	return &GameRecord{
		BoardSize:   boardSize,
		PlayerBlack: "Black",
		PlayerWhite: "White",
		Date:        date.Format("2006-01-02"),
		Result:      "?",
	}
}

// sgfCoord converts 0-indexed board coordinates to SGF letter pair.
// (0,0) -> "aa", (3,4) -> "de", (14,14) -> "oo".
func sgfCoord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

// AddMove appends a move to the record.
func (r *GameRecord) AddMove(m types.Move) {
	colorChar := "B"
	if m.Color == types.White {
		colorChar = "W"
	}
	r.moves = append(r.moves, fmt.Sprintf(";%s[%s]", colorChar, sgfCoord(m.Pos.Col, m.Pos.Row)))
}

// UndoMoves removes the last n moves from the record.
func (r *GameRecord) UndoMoves(n int) {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
}

// MoveCount returns the number of recorded moves.
func (r *GameRecord) MoveCount() int {
	return len(r.moves)
}

// SetResult parses a game outcome and sets the SGF RE property.
// Accepts outcomes like "Black wins" or "Draw" as well as already-formatted SGF
// like "W+", "B+R", "0".
func (r *GameRecord) SetResult(outcome string) {
	r.Result = parseResult(outcome)
}

// String renders the complete record.
func (r *GameRecord) String() string {
	var b strings.Builder

	// Root node
	b.WriteString("(;GM[4]FF[4]CA[UTF-8]")
	b.WriteString("AP[gomoku-local:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", r.BoardSize))
	b.WriteString(fmt.Sprintf("PB[%s]", escapeValue(r.PlayerBlack)))
	b.WriteString(fmt.Sprintf("PW[%s]", escapeValue(r.PlayerWhite)))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")
	return b.String()
}

// escapeValue escapes the characters SGF reserves inside a property value.
func escapeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "]", `\]`)
}

// parseResult converts various outcome formats to SGF RE[] value.
func parseResult(outcome string) string {
	o := strings.TrimSpace(outcome)

	// Already in SGF format
	if isValidSGFResult(o) {
		return o
	}

	low := strings.ToLower(o)

	switch {
	case low == "draw":
		return "0"
	case strings.HasPrefix(low, "white wins"):
		return "W+" + resultReason(low)
	case strings.HasPrefix(low, "black wins"):
		return "B+" + resultReason(low)
	}
	return "?"
}

// resultReason maps "... by resign" style suffixes to their SGF letter.
func resultReason(low string) string {
	byIdx := strings.Index(low, " by ")
	if byIdx == -1 {
		return ""
	}
	rest := strings.TrimSpace(low[byIdx+4:])
	switch {
	case strings.HasPrefix(rest, "resign"):
		return "R"
	case strings.HasPrefix(rest, "time"):
		return "T"
	case strings.HasPrefix(rest, "forfeit"):
		return "F"
	}
	return ""
}

// isValidSGFResult checks if a string is already a valid SGF result.
func isValidSGFResult(s string) bool {
	switch s {
	case "?", "0", "Draw", "Void", "B+", "W+":
		return true
	}
	if len(s) != 3 {
		return false
	}
	if (s[0] != 'B' && s[0] != 'W') || s[1] != '+' {
		return false
	}
	rest := s[2:]
	return rest == "R" || rest == "T" || rest == "F" || rest == "?"
}
