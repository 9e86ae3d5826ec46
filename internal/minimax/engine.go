package minimax

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// CanonicalOpening - cell played on an empty board when the shortcut is enabled.
const CanonicalOpening = 0

var defaultEngine = New()

// Move - result of a search.
type Move struct {
	Index int
	Score int
	Nodes int
}

type Option func(*Engine)

// WithCanonicalOpening - when enabled an empty board is answered with CanonicalOpening without searching.
func WithCanonicalOpening(enabled bool) Option {
	return func(that *Engine) {
		that.canonicalOpening = enabled
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(that *Engine) {
		that.logger = logger.With("component", "minimax")
	}
}

// Engine - holds search options only; it keeps nothing between calls.
type Engine struct {
	logger           *slog.Logger
	canonicalOpening bool
}

func New(opts ...Option) *Engine {
	engine := &Engine{
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		canonicalOpening: true,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// BestMove - searches the full game tree and returns the best move for player.
//
// A move that wins at once is taken immediately. Otherwise the lowest index
// with the highest score wins.
func (that *Engine) BestMove(board tictactoe.Board, player tictactoe.Mark) (Move, error) {
	log := that.logger.With("method", "BestMove", "player", player.String())

	if player != tictactoe.MarkA && player != tictactoe.MarkB {
		return Move{}, fmt.Errorf("%w: no mark to search for", apperror.ErrInvalidMove)
	}

	moves := tictactoe.GenerateMoves(board)
	if len(moves) == 0 {
		return Move{}, apperror.ErrNoLegalMoves
	}

	if state := tictactoe.Classify(board); state.IsTerminal() {
		return Move{}, fmt.Errorf("%w: %s", apperror.ErrGameFinished, state)
	}

	if that.canonicalOpening && board.IsEmpty() {
		log.Debug("canonical opening", "index", CanonicalOpening)
		return Move{Index: CanonicalOpening}, nil
	}

	s := searcher{maximizer: player}
	best := Move{Index: -1, Score: -Inf - 1}

	for _, index := range moves {
		next, err := tictactoe.ApplyMove(board, index, player)
		if err != nil {
			return Move{}, fmt.Errorf("failed to apply move %d: %w", index, err)
		}

		if tictactoe.Classify(next) == tictactoe.WinnerState(player) {
			best = Move{Index: index, Score: Inf}
			break
		}

		if score := s.minMove(next); score > best.Score {
			best.Index = index
			best.Score = score
		}
	}

	best.Nodes = s.nodes

	log.Debug("move selected", "index", best.Index, "score", best.Score, "nodes", best.Nodes)

	return best, nil
}
