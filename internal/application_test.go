package application

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Game: config.Game{
			HumanMark:   "X",
			FirstPlayer: config.FirstPlayerHuman,
		},
	}
}

func TestRunAnalyze(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Prints the best move", func(t *testing.T) {
		var out bytes.Buffer

		err := RunAnalyze(logger, testConfig(), &out, "XOXOOXX..", "O")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "best move for O: cell 7 (row 2, col 1)")
		assert.Contains(t, out.String(), "state: playing")
	})

	t.Run("Full board", func(t *testing.T) {
		err := RunAnalyze(logger, testConfig(), io.Discard, "XOXXOOOXX", "X")

		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})

	t.Run("Bad board", func(t *testing.T) {
		err := RunAnalyze(logger, testConfig(), io.Discard, "XO", "X")

		require.Error(t, err)
	})

	t.Run("Bad player", func(t *testing.T) {
		err := RunAnalyze(logger, testConfig(), io.Discard, ".........", "Q")

		require.Error(t, err)
	})
}

func TestNewGameManager(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Settings come from config", func(t *testing.T) {
		conf := testConfig()
		conf.Game.HumanMark = "O"
		conf.Game.FirstPlayer = config.FirstPlayerComputer

		manager, err := newGameManager(logger, conf)
		require.NoError(t, err)

		game := manager.NewGame()
		assert.Equal(t, tictactoe.MarkB, game.Human.Mark)
		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Invalid config", func(t *testing.T) {
		conf := testConfig()
		conf.Game.FirstPlayer = "nobody"

		_, err := newGameManager(logger, conf)

		require.ErrorIs(t, err, config.ErrUnknownFirstPlayer)
	})
}
