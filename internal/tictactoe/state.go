package tictactoe

type GameState int8

const (
	Playing GameState = iota
	MarkAWins
	MarkBWins
	Draw
)

func (that GameState) String() string {
	switch that {
	case Playing:
		return "playing"
	case MarkAWins:
		return "X wins"
	case MarkBWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that GameState) IsTerminal() bool {
	return that != Playing
}

// Winner - mark of the winning side, Empty for a draw or an unfinished game.
func (that GameState) Winner() Mark {
	switch that {
	case MarkAWins:
		return MarkA
	case MarkBWins:
		return MarkB
	default:
		return Empty
	}
}

func WinnerState(mark Mark) GameState {
	switch mark {
	case MarkA:
		return MarkAWins
	case MarkB:
		return MarkBWins
	default:
		return Playing
	}
}

// Classify - derives the game state from the board contents.
//
// A board where both marks complete a line can't come from legal play. For such a board
// MarkA lines are checked first; the result is not a game rule and callers must not rely on it.
func Classify(board Board) GameState {
	if mark, _, ok := WinningLine(board); ok {
		return WinnerState(mark)
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Playing
	}

	return Draw
}

// WinningLine - the first complete line, MarkA lines before MarkB lines.
func WinningLine(board Board) (Mark, [3]int, bool) {
	for _, mark := range [...]Mark{MarkA, MarkB} {
		for _, combo := range WinCombos {
			if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
				return mark, combo, true
			}
		}
	}

	return Empty, [3]int{}, false
}
