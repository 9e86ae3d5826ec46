// Package minimax selects moves by exhaustive minimax search over the full game tree.
//
// Scores are always taken from the point of view of a fixed maximizing mark: MaxMove places the
// maximizer's mark, MinMove places its opponent's, and terminal boards are scored by
// EvaluateTerminal against the maximizer. No depth limit or cache is used; the recursion depth is
// bounded by the number of empty cells.
package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	// Inf - score of a certain win, -Inf is a certain loss.
	Inf = 1000

	// Unfinished - returned by EvaluateTerminal for a board that is still Playing.
	// It marks the board as not scorable; search never relies on it.
	Unfinished = -1
)

// EvaluateTerminal - scores a finished board for player: +Inf win, -Inf loss, 0 draw.
func EvaluateTerminal(board tictactoe.Board, player tictactoe.Mark) int {
	switch state := tictactoe.Classify(board); state {
	case tictactoe.Draw:
		return 0
	case tictactoe.Playing:
		return Unfinished
	default:
		if state.Winner() == player {
			return Inf
		}
		return -Inf
	}
}

// MaxMove - value of the board when maximizer is to move.
func MaxMove(board tictactoe.Board, maximizer tictactoe.Mark) int {
	s := searcher{maximizer: maximizer}
	return s.maxMove(board)
}

// MinMove - value of the board, for maximizer, when the opponent is to move.
func MinMove(board tictactoe.Board, maximizer tictactoe.Mark) int {
	s := searcher{maximizer: maximizer}
	return s.minMove(board)
}

// MiniMax - optimal move index for player on a board that is still being played.
// An empty board gets the canonical opening, cell 0.
func MiniMax(board tictactoe.Board, player tictactoe.Mark) (int, error) {
	move, err := defaultEngine.BestMove(board, player)
	if err != nil {
		return -1, err
	}

	return move.Index, nil
}

// searcher - per call state of one search; never shared between calls.
type searcher struct {
	maximizer tictactoe.Mark
	nodes     int
}

func (that *searcher) maxMove(board tictactoe.Board) int {
	that.nodes++

	if tictactoe.Classify(board).IsTerminal() {
		return EvaluateTerminal(board, that.maximizer)
	}

	best := -Inf
	for _, index := range tictactoe.GenerateMoves(board) {
		// board is an array value, so the child is a private copy
		next := board
		next[index] = that.maximizer

		best = max(best, that.minMove(next))
	}

	return best
}

func (that *searcher) minMove(board tictactoe.Board) int {
	that.nodes++

	if tictactoe.Classify(board).IsTerminal() {
		return EvaluateTerminal(board, that.maximizer)
	}

	best := Inf
	for _, index := range tictactoe.GenerateMoves(board) {
		next := board
		next[index] = that.maximizer.Opponent()

		best = min(best, that.maxMove(next))
	}

	return best
}
