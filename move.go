package twistcube

import "strings"

// Move is a commanded quarter turn: the nine pieces whose coordinate
// along Axis equals Layer rotate by Direction*90 degrees about Axis.
type Move struct {
	Axis      Axis
	Layer     int // -1, 0, or 1
	Direction Direction
}

// letterSpec ties a notation letter to its axis, layer, and the turn
// direction that the letter's plain (clockwise) form denotes. Slice
// letters follow the usual convention: M turns with L, E with D, S
// with F.
type letterSpec struct {
	axis  Axis
	layer int
	cw    Direction
}

var notationLetters = map[byte]letterSpec{
	'R': {AxisX, 1, DirPos},
	'L': {AxisX, -1, DirNeg},
	'M': {AxisX, 0, DirNeg},
	'U': {AxisY, 1, DirNeg},
	'D': {AxisY, -1, DirPos},
	'E': {AxisY, 0, DirPos},
	'F': {AxisZ, 1, DirPos},
	'B': {AxisZ, -1, DirNeg},
	'S': {AxisZ, 0, DirPos},
}

// Notation returns the standard notation string for this move.
// Examples: R, R', M, U'
func (m Move) Notation() string {
	for letter, spec := range notationLetters {
		if spec.axis != m.Axis || spec.layer != m.Layer {
			continue
		}
		if m.Direction == spec.cw {
			return string(letter)
		}
		return string(letter) + "'"
	}
	return "?"
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	m.Direction = -m.Direction
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single quarter-turn notation string into a Move.
// Examples: R, R', M, E'
// Half turns ("R2") are two quarter turns and are only accepted by
// ParseMoves. Returns ErrInvalidNotation for anything unrecognized.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	spec, ok := notationLetters[upperByte(s[0])]
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	m := Move{Axis: spec.axis, Layer: spec.layer, Direction: spec.cw}
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			m.Direction = -m.Direction
		default:
			return Move{}, ErrInvalidNotation
		}
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves. Half-turn
// suffixes expand into two quarter turns, so "R2 U" yields three moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		if n := len(part); n >= 2 && (part[n-1] == '2' || strings.HasSuffix(part, "2'") || strings.HasSuffix(part, "2`")) {
			m, err := ParseMove(strings.TrimRight(part, "2'`"))
			if err != nil {
				return nil, err
			}
			moves = append(moves, m, m)
			continue
		}
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation
// string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
