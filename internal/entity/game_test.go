package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created for a human playing O, with X first
	game := NewGame(tictactoe.MarkB, tictactoe.MarkA)

	// Then: the board is empty and the computer has X
	expectedGame := Game{
		Board:    tictactoe.Board{},
		State:    tictactoe.Playing,
		Turn:     tictactoe.MarkA,
		First:    tictactoe.MarkA,
		Human:    Player{Name: HumanName, Mark: tictactoe.MarkB},
		Computer: Player{Name: BotName, Mark: tictactoe.MarkA, Bot: true},
	}

	require.Equal(t, expectedGame, game)
	assert.True(t, game.IsComputerTurn())
	assert.False(t, game.IsHumanTurn())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game with the human as X
		game := NewGame(tictactoe.MarkA, tictactoe.MarkA)

		// When: the human plays cell 0
		next, err := game.MakeTurn(tictactoe.MarkA, 0)
		require.NoError(t, err)

		// Then: the board has X in cell 0 and it is O's turn
		assert.Equal(t, tictactoe.MarkA, next.Board[0])
		assert.Equal(t, tictactoe.MarkB, next.Turn)
		assert.Equal(t, tictactoe.Playing, next.State)

		// And: the previous value is untouched
		assert.True(t, game.Board.IsEmpty())
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by X
		game, err := NewGame(tictactoe.MarkA, tictactoe.MarkA).MakeTurn(tictactoe.MarkA, 0)
		require.NoError(t, err)

		// When: O tries to move to the same cell
		next, err := game.MakeTurn(tictactoe.MarkB, 0)

		// Then: ErrInvalidMove is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.Equal(t, game, next)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game where it's X's turn
		game := NewGame(tictactoe.MarkA, tictactoe.MarkA)

		// When: O tries to move
		next, err := game.MakeTurn(tictactoe.MarkB, 1)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, game, next)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame(tictactoe.MarkA, tictactoe.MarkA)

		_, err := game.MakeTurn(tictactoe.MarkA, 20)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: X has two in the top row
		game := NewGame(tictactoe.MarkA, tictactoe.MarkA)
		for _, cell := range []int{0, 3, 1, 4} {
			var err error
			game, err = game.MakeTurn(game.Turn, cell)
			require.NoError(t, err)
		}

		// When: X completes the row
		game, err := game.MakeTurn(tictactoe.MarkA, 2)
		require.NoError(t, err)

		// Then: the game is finished with nobody to move
		assert.Equal(t, tictactoe.MarkAWins, game.State)
		assert.Equal(t, tictactoe.Empty, game.Turn)
		assert.True(t, game.IsFinished())
		assert.Equal(t, OutcomeWin, game.Outcome())

		// And: no further turn is accepted
		_, err = game.MakeTurn(tictactoe.MarkB, 5)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Draw", func(t *testing.T) {
		board, err := tictactoe.ParseBoard("XOXXOOOXX")
		require.NoError(t, err)

		game := NewGame(tictactoe.MarkB, tictactoe.MarkA)
		game.Board = board

		game = game.UpdateGameState()

		assert.Equal(t, tictactoe.Draw, game.State)
		assert.Equal(t, OutcomeDraw, game.Outcome())
	})

	t.Run("Game remains ongoing", func(t *testing.T) {
		game := NewGame(tictactoe.MarkB, tictactoe.MarkA)
		game.Board[4] = tictactoe.MarkA
		game.Turn = tictactoe.MarkB

		game = game.UpdateGameState()

		assert.Equal(t, tictactoe.Playing, game.State)
		assert.Equal(t, tictactoe.MarkB, game.Turn)
		assert.Equal(t, OutcomeNone, game.Outcome())
	})

	t.Run("Computer win is a loss", func(t *testing.T) {
		board, err := tictactoe.ParseBoard("OOOXX.X..")
		require.NoError(t, err)

		game := NewGame(tictactoe.MarkA, tictactoe.MarkA)
		game.Board = board

		assert.Equal(t, OutcomeLoss, game.UpdateGameState().Outcome())
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a game in progress
	game, err := NewGame(tictactoe.MarkA, tictactoe.MarkA).MakeTurn(tictactoe.MarkA, 4)
	require.NoError(t, err)

	// When: resetting with O first
	game = game.Reset(tictactoe.MarkB)

	// Then: the board is empty and the players are kept
	assert.True(t, game.Board.IsEmpty())
	assert.Equal(t, tictactoe.Playing, game.State)
	assert.Equal(t, tictactoe.MarkB, game.Turn)
	assert.Equal(t, tictactoe.MarkA, game.Human.Mark)
	assert.True(t, game.IsComputerTurn())
}

func TestScore_Record(t *testing.T) {
	score := Score{}.
		Record(OutcomeWin).
		Record(OutcomeDraw).
		Record(OutcomeDraw).
		Record(OutcomeNone)

	assert.Equal(t, Score{Wins: 1, Draws: 2}, score)
	assert.Equal(t, 3, score.Played())
	assert.Equal(t, "won 1, lost 0, drawn 2", score.String())
}
