package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNotBotTurn = errors.New("it's not the computer's turn")

type BotService interface {
	MakeTurn(game entity.Game) (entity.Game, error)
	Suggest(game entity.Game, mark tictactoe.Mark) (minimax.Move, error)
}

type searchEngine interface {
	BestMove(board tictactoe.Board, player tictactoe.Mark) (minimax.Move, error)
}

type botService struct {
	logger *slog.Logger
	engine searchEngine
}

func NewBotService(logger *slog.Logger, engine searchEngine) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

// MakeTurn - plays the engine's move for the computer player.
func (that *botService) MakeTurn(game entity.Game) (entity.Game, error) {
	if !game.IsComputerTurn() {
		return game, ErrNotBotTurn
	}

	move, err := that.Suggest(game, game.Computer.Mark)
	if err != nil {
		return game, err
	}

	next, err := game.MakeTurn(game.Computer.Mark, move.Index)
	if err != nil {
		return game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Info("bot made a turn", "cell", move.Index, "score", move.Score, "nodes", move.Nodes, "state", next.State.String())

	return next, nil
}

// Suggest - best move for mark on the current board, used for hints as well.
func (that *botService) Suggest(game entity.Game, mark tictactoe.Mark) (minimax.Move, error) {
	move, err := that.engine.BestMove(game.Board, mark)
	if err != nil {
		return minimax.Move{}, fmt.Errorf("failed to search for %s: %w", mark, err)
	}

	return move, nil
}
