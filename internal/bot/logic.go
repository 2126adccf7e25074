package bot

import (
	"math"

	"ctchen222/tictactoe-minimax/internal/game"
)

const (
	// WinScore is the value of a win found at the search root.
	WinScore = 10

	// InvalidBranchScore marks a branch whose move could not be placed.
	// It is lower than any real score so the branch is never selected.
	InvalidBranchScore = math.MinInt32
)

// Score rates a terminal board from perspective's point of view.
// Wins found in fewer plies score higher, losses found later score higher.
// A board that nobody has won scores 0.
func Score(b game.Board, perspective, opponent game.PlayerMark, depth int) int {
	switch {
	case b.IsWon(perspective):
		return WinScore - depth
	case b.IsWon(opponent):
		return -WinScore + depth
	default:
		return 0
	}
}

// Evaluate plays move for mover on b and returns the minimax value of the
// resulting position for perspective. depth is the number of plies between
// the search root and the position after move.
func Evaluate(b game.Board, move int, mover, perspective, opponent game.PlayerMark, depth int) int {
	var s searcher
	return s.evaluate(b, move, mover, perspective, opponent, depth)
}

// searcher walks the full game tree. It keeps no positions, only a count of
// the nodes it visited.
type searcher struct {
	nodes int64
}

func (s *searcher) evaluate(b game.Board, move int, mover, perspective, opponent game.PlayerMark, depth int) int {
	s.nodes++

	next, err := b.Place(mover, move)
	if err != nil {
		return InvalidBranchScore
	}
	if next.IsTerminal() {
		return Score(next, perspective, opponent, depth)
	}

	nextMover := mover.Opponent()
	maximizing := nextMover == perspective

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, idx := range next.EmptyIndices() {
		score := s.evaluate(next, idx, nextMover, perspective, opponent, depth+1)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}
