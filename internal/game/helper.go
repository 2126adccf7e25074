package game

import (
	"fmt"
	"math/rand/v2"
)

// RandomFirstMark picks the mark that opens the game.
func RandomFirstMark(r *rand.Rand) PlayerMark {
	if r.IntN(2) == 0 {
		return PlayerX
	}
	return PlayerO
}

// ParseMark converts "X"/"O" (any case) into a PlayerMark.
func ParseMark(s string) (PlayerMark, error) {
	switch s {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return None, fmt.Errorf("parse mark %q: %w", s, ErrInvalidMark)
	}
}

// BoardFromString builds a board from 9 characters, X/O for marks and anything
// else for an empty cell. Whitespace is ignored.
func BoardFromString(s string) (Board, error) {
	var b Board
	i := 0
	for _, r := range s {
		switch r {
		case ' ', '\n', '\t':
			continue
		}
		if i >= Size {
			return Board{}, fmt.Errorf("board %q has more than %d cells: %w", s, Size, ErrIndexOutOfRange)
		}
		switch r {
		case 'X', 'x':
			b[i] = PlayerX
		case 'O', 'o':
			b[i] = PlayerO
		}
		i++
	}
	if i != Size {
		return Board{}, fmt.Errorf("board %q has %d cells, want %d: %w", s, i, Size, ErrIndexOutOfRange)
	}
	return b, nil
}
