package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"gomoku-local/types"
)

// GameInfo holds metadata parsed from an SGF root node.
type GameInfo struct {
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	MoveCount   int
}

// Decode parses an SGF record and returns its header and moves in play order.
// A record for another game type, a pass, or a move off the board is an error.
func Decode(content string) (*GameInfo, []types.Move, error) {
	if !strings.Contains(content, "(;") {
		return nil, nil, fmt.Errorf("not an SGF record")
	}
	props := parseProperties(content)

	if gm, ok := props["GM"]; ok && gm != "4" {
		return nil, nil, fmt.Errorf("not a Gomoku record: GM[%s]", gm)
	}

	boardSize := 15
	if v, ok := props["SZ"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 || n > 26 {
			return nil, nil, fmt.Errorf("invalid board size: SZ[%s]", v)
		}
		boardSize = n
	}

	var moves []types.Move
	for _, node := range parseNodes(content) {
		color, x, y, ok := parseMoveNode(node)
		if !ok {
			continue
		}
		if x == -1 && y == -1 {
			return nil, nil, fmt.Errorf("move %d: pass is not allowed", len(moves)+1)
		}
		if x < 0 || x >= boardSize || y < 0 || y >= boardSize {
			return nil, nil, fmt.Errorf("move %d: %q is off a %dx%d board", len(moves)+1, node, boardSize, boardSize)
		}
		moves = append(moves, types.Move{Pos: types.Pos{Col: x, Row: y}, Color: color})
	}

	info := &GameInfo{
		BoardSize:   boardSize,
		PlayerBlack: props["PB"],
		PlayerWhite: props["PW"],
		Date:        props["DT"],
		Result:      props["RE"],
		MoveCount:   len(moves),
	}
	return info, moves, nil
}

// parseProperties extracts KEY[value] pairs from the root node of an SGF string.
func parseProperties(content string) map[string]string {
	props := make(map[string]string)

	// Find the root node: starts after "(;"
	start := strings.Index(content, "(;")
	if start == -1 {
		return props
	}
	start += 2 // skip "(;"

	// Root node ends at the next ";" or ")" outside a value
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == '[' {
			i = skipValue(content, i)
			continue
		}
		if content[i] == ';' || content[i] == ')' {
			end = i
			break
		}
	}

	extractProps(content[start:end], props)
	return props
}

// skipValue returns the index of the ']' closing the value opened at content[open].
func skipValue(content string, open int) int {
	i := open + 1
	for i < len(content) && content[i] != ']' {
		if content[i] == '\\' && i+1 < len(content) {
			i++ // skip escaped char
		}
		i++
	}
	return i
}

// extractProps parses KEY[value] pairs from a node string into the map.
func extractProps(node string, props map[string]string) {
	i := 0
	for i < len(node) {
		// Skip whitespace
		for i < len(node) && (node[i] == ' ' || node[i] == '\n' || node[i] == '\r' || node[i] == '\t') {
			i++
		}
		if i >= len(node) {
			break
		}

		// Read property identifier (uppercase letters)
		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		// Read all property values (e.g., AB[aa][bb][cc])
		for i < len(node) && node[i] == '[' {
			end := skipValue(node, i)
			props[key] = unescapeValue(node[i+1 : end]) // last value wins for simple props
			i = end
			if i < len(node) {
				i++ // skip ']'
			}
		}
	}
}

// unescapeValue drops SGF escape backslashes.
func unescapeValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseNodes returns all node strings after the root node.
func parseNodes(content string) []string {
	var nodes []string

	start := strings.Index(content, "(;")
	if start == -1 {
		return nodes
	}

	// Skip root node to find subsequent ";"
	i := start + 2
	for i < len(content) && content[i] != ';' {
		if content[i] == '[' {
			i = skipValue(content, i)
		}
		i++
	}

	// Now parse subsequent nodes
	for i < len(content) {
		if content[i] != ';' {
			i++
			continue
		}
		nodeStart := i
		i++
		// Read until next ';' or ')'
		for i < len(content) && content[i] != ';' && content[i] != ')' {
			if content[i] == '[' {
				i = skipValue(content, i)
			}
			i++
		}
		nodes = append(nodes, content[nodeStart:i])
	}

	return nodes
}

// parseMoveNode extracts color and coordinates from a move node like ";B[hh]".
// Pass moves return x=-1, y=-1.
func parseMoveNode(node string) (color types.Color, x, y int, ok bool) {
	node = strings.TrimSpace(node)
	if len(node) < 2 || node[0] != ';' {
		return 0, 0, 0, false
	}

	switch node[1] {
	case 'B':
		color = types.Black
	case 'W':
		color = types.White
	default:
		return 0, 0, 0, false
	}

	// Find the value in brackets
	bracketStart := strings.Index(node, "[")
	bracketEnd := strings.Index(node, "]")
	if bracketStart != 2 || bracketEnd == -1 || bracketEnd <= bracketStart {
		return 0, 0, 0, false
	}

	coord := node[bracketStart+1 : bracketEnd]
	if coord == "" {
		return color, -1, -1, true
	}
	if len(coord) != 2 {
		return 0, 0, 0, false
	}

	x = int(coord[0] - 'a')
	y = int(coord[1] - 'a')
	return color, x, y, true
}
