package entity

import "fmt"

// Score - session tally of finished games, kept in memory only.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

func (that Score) Record(outcome Outcome) Score {
	switch outcome {
	case OutcomeWin:
		that.Wins++
	case OutcomeLoss:
		that.Losses++
	case OutcomeDraw:
		that.Draws++
	case OutcomeNone:
	}

	return that
}

func (that Score) Played() int {
	return that.Wins + that.Losses + that.Draws
}

func (that Score) String() string {
	return fmt.Sprintf("won %d, lost %d, drawn %d", that.Wins, that.Losses, that.Draws)
}
