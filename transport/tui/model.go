package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const noHint = -1

type gameManager interface {
	NewGame() entity.Game
	Reset(game entity.Game) entity.Game
	MakeTurn(game entity.Game, cell int) (entity.Game, error)
	BotTurn(game entity.Game) (entity.Game, error)
	Hint(game entity.Game) (int, error)
}

// botTurnMsg - result of the computer's turn. Round ties it to the game it was started for.
type botTurnMsg struct {
	round int
	game  entity.Game
	err   error
}

// Model - the bubbletea model of the board window.
type Model struct {
	logger  *slog.Logger
	manager gameManager

	game     entity.Game
	score    entity.Score
	round    int
	cursor   int
	hint     int
	thinking bool
	status   string
}

func New(logger *slog.Logger, manager gameManager) Model {
	return Model{
		logger:  logger.With("component", "tui"),
		manager: manager,
		game:    manager.NewGame(),
		cursor:  4,
		hint:    noHint,
	}
}

func (m Model) Init() tea.Cmd {
	if m.game.IsComputerTurn() {
		return m.startBotTurn()
	}

	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		cell, ok := cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}

		return m.play(cell)
	case botTurnMsg:
		return m.handleBotTurn(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "enter", " ":
		return m.play(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m.play(int(key[0] - '1'))
	case "r":
		return m.reset()
	case "?":
		return m.showHint(), nil
	}

	return m, nil
}

func (m Model) play(cell int) (tea.Model, tea.Cmd) {
	switch {
	case m.game.IsFinished():
		m.status = "game over, press r to play again"
		return m, nil
	case m.thinking || !m.game.IsHumanTurn():
		m.status = "wait for the computer"
		return m, nil
	}

	next, err := m.manager.MakeTurn(m.game, cell)
	if err != nil {
		m.logger.Warn("turn rejected", "cell", cell, "error", err)
		m.status = describeError(err)
		return m, nil
	}

	m.game = next
	m.cursor = cell
	m.hint = noHint
	m.status = ""

	if m.game.IsFinished() {
		return m.finish(), nil
	}

	cmd := m.startBotTurn()

	return m, cmd
}

func (m *Model) startBotTurn() tea.Cmd {
	m.thinking = true

	manager, game, round := m.manager, m.game, m.round

	return func() tea.Msg {
		next, err := manager.BotTurn(game)
		return botTurnMsg{round: round, game: next, err: err}
	}
}

func (m Model) handleBotTurn(msg botTurnMsg) (tea.Model, tea.Cmd) {
	if msg.round != m.round {
		return m, nil
	}

	m.thinking = false

	if msg.err != nil {
		m.logger.Error("computer failed to move", "error", msg.err)
		m.status = "computer failed to move: " + msg.err.Error()
		return m, nil
	}

	m.game = msg.game

	if m.game.IsFinished() {
		return m.finish(), nil
	}

	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.game = m.manager.Reset(m.game)
	m.round++
	m.thinking = false
	m.hint = noHint
	m.status = ""

	if m.game.IsComputerTurn() {
		cmd := m.startBotTurn()
		return m, cmd
	}

	return m, nil
}

func (m Model) showHint() Model {
	cell, err := m.manager.Hint(m.game)
	if err != nil {
		m.status = describeError(err)
		return m
	}

	m.hint = cell
	m.status = fmt.Sprintf("hint: cell %d", cell+1)

	return m
}

func (m Model) finish() Model {
	outcome := m.game.Outcome()
	m.score = m.score.Record(outcome)

	m.logger.Info("game over", "outcome", string(outcome), "score", m.score.String())

	return m
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		return "that cell is taken"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "it's not your turn"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game over, press r to play again"
	default:
		return err.Error()
	}
}
