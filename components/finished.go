package components

import "github.com/yohamta/donburi"

// FinishedOption represents a menu option on the run-complete screen
type FinishedOption int

const (
	FinishedPlayAgain FinishedOption = iota
)

type FinishedData struct {
	SelectedOption FinishedOption
	Levels         int
}

var Finished = donburi.NewComponentType[FinishedData]()
