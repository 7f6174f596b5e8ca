// Package equity scores checkers positions from player 2's point of view.
package equity

import (
	"github.com/domino14/checkers/board"
)

// Evaluator scores a board. Higher is better for player 2, the side the
// search maximizes for.
type Evaluator interface {
	Evaluate(b *board.Board) float64
}
