package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// Game - one human-versus-computer game. It is passed by value: every turn returns a new Game.
type Game struct {
	Board tictactoe.Board
	State tictactoe.GameState
	Turn  tictactoe.Mark
	First tictactoe.Mark

	Human    Player
	Computer Player
}

// NewGame - empty board, first to move is firstMark.
func NewGame(humanMark, firstMark tictactoe.Mark) Game {
	return Game{
		Board:    tictactoe.NewBoard(),
		State:    tictactoe.Playing,
		Turn:     firstMark,
		First:    firstMark,
		Human:    NewHumanPlayer(humanMark),
		Computer: NewBotPlayer(humanMark.Opponent()),
	}
}

// Reset - fresh board with the same players.
func (that Game) Reset(firstMark tictactoe.Mark) Game {
	return NewGame(that.Human.Mark, firstMark)
}

func (that Game) UpdateGameState() Game {
	that.State = tictactoe.Classify(that.Board)
	if that.State.IsTerminal() {
		that.Turn = tictactoe.Empty
	}

	return that
}

func (that Game) MakeTurn(mark tictactoe.Mark, cell int) (Game, error) {
	if that.IsFinished() {
		return that, apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return that, apperror.ErrNotYourTurn
	}

	board, err := tictactoe.ApplyMove(that.Board, cell, mark)
	if err != nil {
		return that, fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.Turn = mark.Opponent()

	return that.UpdateGameState(), nil
}

func (that Game) IsFinished() bool {
	return that.State.IsTerminal()
}

func (that Game) IsHumanTurn() bool {
	return !that.IsFinished() && that.Turn == that.Human.Mark
}

func (that Game) IsComputerTurn() bool {
	return !that.IsFinished() && that.Turn == that.Computer.Mark
}

// Outcome - result of a finished game for the human player.
func (that Game) Outcome() Outcome {
	switch that.State {
	case tictactoe.Draw:
		return OutcomeDraw
	case tictactoe.Playing:
		return OutcomeNone
	}

	if that.State.Winner() == that.Human.Mark {
		return OutcomeWin
	}

	return OutcomeLoss
}
