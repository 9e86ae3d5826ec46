package tictactoe

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size - number of cells on the 3x3 board.
const Size = 9

type Mark int8

const (
	Empty Mark = iota
	MarkA
	MarkB
)

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) String() string {
	switch that {
	case MarkA:
		return "X"
	case MarkB:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return MarkA, nil
	case "O":
		return MarkB, nil
	default:
		return Empty, fmt.Errorf("unknown mark %q", s)
	}
}

// Board - row-major grid, index = row*3 + col. It is an array, so assignment copies it.
type Board [Size]Mark

func NewBoard() Board {
	return Board{}
}

// ParseBoard - reads 9 cells written as X, O, '.' or ' '.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := []rune(s)
	if len(cells) != Size {
		return board, fmt.Errorf("board must have %d cells, got %d", Size, len(cells))
	}

	for i, r := range cells {
		switch r {
		case 'X', 'x':
			board[i] = MarkA
		case 'O', 'o':
			board[i] = MarkB
		case '.', ' ', '_':
			board[i] = Empty
		default:
			return board, fmt.Errorf("unexpected cell %q at index %d", r, i)
		}
	}

	return board, nil
}

func (that Board) IsEmpty() bool {
	return lo.EveryBy(that[:], func(mark Mark) bool { return mark == Empty })
}

func (that Board) IsFull() bool {
	return !lo.Contains(that[:], Empty)
}

// Count - how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	return lo.Count(that[:], mark)
}

func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + that[row*3+col].String() + " ")
		}
	}

	return sb.String()
}

// ApplyMove - places mark on an empty cell and returns the new board.
// The passed board is never modified.
func ApplyMove(board Board, index int, mark Mark) (Board, error) {
	if index < 0 || index >= Size {
		return board, fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, index)
	}

	if mark != MarkA && mark != MarkB {
		return board, fmt.Errorf("%w: mark %d can't be placed", apperror.ErrInvalidMove, mark)
	}

	if board[index] != Empty {
		return board, fmt.Errorf("%w: cell %d is occupied by %s", apperror.ErrInvalidMove, index, board[index])
	}

	board[index] = mark

	return board, nil
}

// GenerateMoves - indices of all empty cells in ascending order.
func GenerateMoves(board Board) []int {
	return lo.Filter(lo.Range(Size), func(index, _ int) bool {
		return board[index] == Empty
	})
}
