package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the config file")
	analyze := flag.String("analyze", "", "print the best move for a board of 9 cells (X, O, .) and exit")
	player := flag.String("player", "X", "mark to move for -analyze")
	flag.Parse()

	conf := config.MustLoad(*configPath)

	if *analyze != "" {
		logger := initLogger(conf.LogLevel, os.Stderr)
		if err := app.RunAnalyze(logger, conf, os.Stdout, *analyze, *player); err != nil {
			panic(fmt.Errorf("analyze failed: %w", err))
		}
		return
	}

	// the game window owns stdout, logs go to a file
	logOutput, closeLog := openLogFile(conf.LogFile)
	defer closeLog()

	if err := app.RunApp(initLogger(conf.LogLevel, logOutput), conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger.
func initLogger(logLevel string, w io.Writer) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file, func() {
		if err = file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
}
