package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// board geometry on screen, used to map mouse clicks back to cells
const (
	boardLeft = 2
	boardTop  = 2
	cellWidth = 5
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	markAStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	markBStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("42"))
	winStyle    = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("22"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tic-tac-toe") + "\n\n")
	sb.WriteString(m.renderBoard())
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(m.statusLine()) + "\n")
	sb.WriteString("session: " + m.score.String() + "\n\n")
	sb.WriteString(helpStyle.Render("arrows/hjkl move • enter/space or 1-9 play • click a cell • ? hint • r new game • q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderBoard() string {
	_, line, won := tictactoe.WinningLine(m.game.Board)

	rows := make([]string, 0, 5)
	for row := 0; row < 3; row++ {
		if row > 0 {
			rows = append(rows, strings.Repeat(" ", boardLeft)+separatorLine())
		}

		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			cells = append(cells, m.renderCell(index, won && (line[0] == index || line[1] == index || line[2] == index)))
		}

		rows = append(rows, strings.Repeat(" ", boardLeft)+strings.Join(cells, "│"))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCell(index int, winning bool) string {
	mark := m.game.Board[index]

	text := mark.String()
	switch mark {
	case tictactoe.MarkA:
		text = markAStyle.Render(text)
	case tictactoe.MarkB:
		text = markBStyle.Render(text)
	case tictactoe.Empty:
		if index == m.hint {
			text = hintStyle.Render("*")
		}
	}

	pad := strings.Repeat(" ", (cellWidth-1)/2)
	cell := pad + text + pad

	switch {
	case winning:
		return winStyle.Render(cell)
	case index == m.cursor && !m.game.IsFinished():
		return cursorStyle.Render(cell)
	default:
		return cell
	}
}

func separatorLine() string {
	segment := strings.Repeat("─", cellWidth)
	return segment + "┼" + segment + "┼" + segment
}

func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}

	switch m.game.Outcome() {
	case entity.OutcomeWin:
		return "you win! press r to play again"
	case entity.OutcomeLoss:
		return "computer wins, press r to play again"
	case entity.OutcomeDraw:
		return "draw, press r to play again"
	case entity.OutcomeNone:
	}

	if m.game.IsComputerTurn() {
		return "computer is thinking..."
	}

	return "your turn (" + m.game.Human.Mark.String() + ")"
}

// cellAt - maps a screen position to a board index; separators and the margin map to nothing.
func cellAt(x, y int) (int, bool) {
	bx, by := x-boardLeft, y-boardTop
	if bx < 0 || by < 0 || by%2 == 1 || bx%(cellWidth+1) == cellWidth {
		return 0, false
	}

	row, col := by/2, bx/(cellWidth+1)
	if row > 2 || col > 2 {
		return 0, false
	}

	return row*3 + col, true
}
