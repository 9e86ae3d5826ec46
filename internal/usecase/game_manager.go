package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type botService interface {
	MakeTurn(game entity.Game) (entity.Game, error)
	Suggest(game entity.Game, mark tictactoe.Mark) (minimax.Move, error)
}

// Settings - who plays which mark and who opens.
type Settings struct {
	HumanMark      tictactoe.Mark
	HumanFirst     bool
	AlternateFirst bool
}

// GameManager - drives a game between the human and the computer. It holds no game state:
// every method takes the current Game and returns the next one.
type GameManager struct {
	logger   *slog.Logger
	bot      botService
	settings Settings
}

func NewGameManager(logger *slog.Logger, bot botService, settings Settings) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		bot:      bot,
		settings: settings,
	}
}

func (that *GameManager) NewGame() entity.Game {
	first := that.settings.HumanMark.Opponent()
	if that.settings.HumanFirst {
		first = that.settings.HumanMark
	}

	game := entity.NewGame(that.settings.HumanMark, first)

	that.logger.Info("new game", "human", game.Human.Mark.String(), "first", first.String())

	return game
}

// Reset - replaces the board with an empty one. With AlternateFirst the other side opens.
func (that *GameManager) Reset(game entity.Game) entity.Game {
	first := game.First
	if that.settings.AlternateFirst {
		first = first.Opponent()
	}

	that.logger.Info("game reset", "first", first.String())

	return game.Reset(first)
}

// MakeTurn - applies the human's move.
func (that *GameManager) MakeTurn(game entity.Game, cell int) (entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	next, err := game.MakeTurn(game.Human.Mark, cell)
	if err != nil {
		log.Warn("human turn rejected", "error", err)
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if next.IsFinished() {
		log.Info("game finished", "state", next.State.String())
	}

	return next, nil
}

// BotTurn - lets the computer answer.
func (that *GameManager) BotTurn(game entity.Game) (entity.Game, error) {
	log := that.logger.With("method", "BotTurn")

	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	next, err := that.bot.MakeTurn(game)
	if err != nil {
		log.Error("bot failed to make turn", "error", err)
		return game, fmt.Errorf("failed bot turn: %w", err)
	}

	if next.IsFinished() {
		log.Info("game finished", "state", next.State.String())
	}

	return next, nil
}

// Hint - the cell the engine would play for the human.
func (that *GameManager) Hint(game entity.Game) (int, error) {
	if !game.IsHumanTurn() {
		return -1, apperror.ErrNotYourTurn
	}

	move, err := that.bot.Suggest(game, game.Human.Mark)
	if err != nil {
		return -1, fmt.Errorf("failed to get hint: %w", err)
	}

	return move.Index, nil
}
