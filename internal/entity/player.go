package entity

import "github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"

const (
	HumanName = "you"
	BotName   = "computer"
)

type Player struct {
	Name string
	Mark tictactoe.Mark
	Bot  bool
}

func NewHumanPlayer(mark tictactoe.Mark) Player {
	return Player{Name: HumanName, Mark: mark}
}

func NewBotPlayer(mark tictactoe.Mark) Player {
	return Player{Name: BotName, Mark: mark, Bot: true}
}

func (that Player) IsBot() bool {
	return that.Bot
}
