package equity

import (
	"github.com/domino14/checkers/board"
)

// Evaluate returns the weighted sum of player 2's features minus player 1's.
func Evaluate(b *board.Board, w Weights) float64 {
	p1 := Count(b, board.Player1)
	p2 := Count(b, board.Player2)
	return w.Pieces*float64(p2.Pieces-p1.Pieces) +
		w.Kings*float64(p2.Kings-p1.Kings) +
		w.Moves*float64(p2.Moves-p1.Moves) +
		w.Opportunities*float64(p2.Opportunities-p1.Opportunities) +
		w.KingHopefuls*float64(p2.KingHopefuls-p1.KingHopefuls)
}

// WeightedCalculator is an Evaluator with fixed weights.
type WeightedCalculator struct {
	weights Weights
}

func NewWeightedCalculator(w Weights) *WeightedCalculator {
	return &WeightedCalculator{weights: w}
}

func (wc *WeightedCalculator) Evaluate(b *board.Board) float64 {
	return Evaluate(b, wc.weights)
}

func (wc *WeightedCalculator) Weights() Weights {
	return wc.weights
}
