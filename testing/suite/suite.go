package suite

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine  *minimax.Engine
	Bot     service.BotService
	Manager *usecase.GameManager
}

// New - wires the real engine, bot and game manager with a logger that writes to the test log.
func New(t *testing.T, settings usecase.Settings) *Suite {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := minimax.New(minimax.WithLogger(logger))
	bot := service.NewBotService(logger, engine)

	return &Suite{
		T:       t,
		Logger:  logger,
		Engine:  engine,
		Bot:     bot,
		Manager: usecase.NewGameManager(logger, bot, settings),
	}
}

type testWriter struct {
	t *testing.T
}

func (that testWriter) Write(p []byte) (int, error) {
	that.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
