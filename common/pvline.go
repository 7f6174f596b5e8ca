package common

import (
	"fmt"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/cdp"
)

// Credit: MIT-licensed https://github.com/algerbrex/blunder/blob/main/engine/search.go
type PVLine struct {
	Boards []board.Board
	score  float64
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Boards = nil
}

// Update the principal variation line with a new best board,
// and a new line of best play after it.
func (pvLine *PVLine) Update(b board.Board, newPVLine PVLine, score float64) {
	pvLine.Clear()
	pvLine.Boards = append(pvLine.Boards, b)
	pvLine.Boards = append(pvLine.Boards, newPVLine.Boards...)
	pvLine.score = score
}

// Get the first board of the principal variation line.
func (pvLine *PVLine) GetPVBoard() (board.Board, bool) {
	if len(pvLine.Boards) == 0 {
		return board.Board{}, false
	}
	return pvLine.Boards[0], true
}

func (pvLine PVLine) Score() float64 {
	return pvLine.score
}

// Convert the principal variation line to a string.
func (pvLine PVLine) String() string {
	var s string
	s = fmt.Sprintf("PV; val %g\n", pvLine.score)
	for i := 0; i < len(pvLine.Boards); i++ {
		s += fmt.Sprintf("%d: %s\n", i+1, cdp.ToCDP(&pvLine.Boards[i], board.NoColor))
	}
	return s
}

func (pvLine PVLine) NLBString() string {
	// no line breaks
	var s string
	s = fmt.Sprintf("PV; val %g; ", pvLine.score)
	for i := 0; i < len(pvLine.Boards); i++ {
		s += fmt.Sprintf("%d: %s; ", i+1, cdp.ToCDP(&pvLine.Boards[i], board.NoColor))
	}
	return s
}
