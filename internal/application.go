package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/tui"
)

// RunApp - runs the board window until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	manager, err := newGameManager(logger, conf)
	if err != nil {
		return err
	}

	log.Info("Starting game window")

	program := tea.NewProgram(
		tui.New(logger, manager),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("game window error: %w", err)
	}

	log.Info("Game window closed")

	return nil
}

// RunAnalyze - prints the engine's move for a board given as 9 cells (X, O, '.').
func RunAnalyze(logger *slog.Logger, conf *config.Config, w io.Writer, cells, player string) error {
	board, err := tictactoe.ParseBoard(cells)
	if err != nil {
		return fmt.Errorf("failed to parse board: %w", err)
	}

	mark, err := tictactoe.ParseMark(player)
	if err != nil {
		return fmt.Errorf("failed to parse player: %w", err)
	}

	engine := newEngine(logger, conf)

	move, err := engine.BestMove(board, mark)
	if err != nil {
		return fmt.Errorf("failed to analyze board: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n\nstate: %s\nbest move for %s: cell %d (row %d, col %d)\nscore: %d\nnodes: %d\n",
		board, tictactoe.Classify(board), mark, move.Index, move.Index/3, move.Index%3, move.Score, move.Nodes)
	if err != nil {
		return fmt.Errorf("failed to write analysis: %w", err)
	}

	return nil
}

func newEngine(logger *slog.Logger, conf *config.Config) *minimax.Engine {
	return minimax.New(
		minimax.WithLogger(logger),
		minimax.WithCanonicalOpening(!conf.Game.SearchOpening),
	)
}

func newGameManager(logger *slog.Logger, conf *config.Config) (*usecase.GameManager, error) {
	humanMark, err := conf.Game.GetHumanMark()
	if err != nil {
		return nil, err
	}

	humanFirst, err := conf.Game.IsHumanFirst()
	if err != nil {
		return nil, err
	}

	bot := service.NewBotService(logger, newEngine(logger, conf))

	return usecase.NewGameManager(logger, bot, usecase.Settings{
		HumanMark:      humanMark,
		HumanFirst:     humanFirst,
		AlternateFirst: !conf.Game.KeepFirstPlayer,
	}), nil
}
