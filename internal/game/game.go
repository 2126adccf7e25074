package game

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 8
	Size      = BorderMax + 1
)

var (
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrInvalidMark     = errors.New("invalid player mark")
)

// Lines lists every winning line on the board: 3 rows, 3 columns and 2 diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Valid reports whether the mark belongs to a player.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Board is the 3x3 grid in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Board is a value. Every transition returns a new Board and leaves the
// receiver untouched, so hypothetical positions never leak into a game in play.
type Board [Size]PlayerMark

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Place returns a copy of the board with mark set at index.
func (b Board) Place(mark PlayerMark, index int) (Board, error) {
	if index < BorderMin || index > BorderMax {
		return b, fmt.Errorf("place %s at %d: %w", mark, index, ErrIndexOutOfRange)
	}
	if !mark.Valid() {
		return b, fmt.Errorf("place %q at %d: %w", mark, index, ErrInvalidMark)
	}
	if b[index] != None {
		return b, fmt.Errorf("place %s at %d: %w", mark, index, ErrCellOccupied)
	}

	b[index] = mark
	return b, nil
}

// IsWon reports whether mark occupies all three cells of any line.
func (b Board) IsWon(mark PlayerMark) bool {
	if !mark.Valid() {
		return false
	}
	for _, line := range Lines {
		if b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// EmptyIndices returns the empty cells in ascending order.
func (b Board) EmptyIndices() []int {
	indices := make([]int, 0, Size)
	for i, cell := range b {
		if cell == None {
			indices = append(indices, i)
		}
	}
	return indices
}

// Winner returns the mark that completed a line, or None.
func (b Board) Winner() PlayerMark {
	switch {
	case b.IsWon(PlayerX):
		return PlayerX
	case b.IsWon(PlayerO):
		return PlayerO
	default:
		return None
	}
}

// IsTerminal reports whether the game is over on this board.
func (b Board) IsTerminal() bool {
	return b.Winner() != None || b.IsFull()
}

// IsDraw checks if the board is full without a winner.
func (b Board) IsDraw() bool {
	return b.Winner() == None && b.IsFull()
}

// Count returns how many cells hold mark.
func (b Board) Count(mark PlayerMark) int {
	n := 0
	for _, cell := range b {
		if cell == mark {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for i, cell := range b {
		if cell == None {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
		if i%3 == 2 {
			if i != BorderMax {
				sb.WriteByte('\n')
			}
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
