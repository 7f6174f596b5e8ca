package alphabeta

import (
	"math"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/movegen"
)

// Minimax is the same search without pruning. It visits every node, so it
// is only useful to check Search against.
func Minimax(b *board.Board, depth int, maximizing bool, w equity.Weights) (float64, board.Board) {
	if depth <= 0 {
		return equity.Evaluate(b, w), *b
	}
	children := movegen.GenerateBoards(b, SideToMove(maximizing))
	if len(children) == 0 {
		return noMoveScore(maximizing), *b
	}

	best := children[0]
	bestEval := math.Inf(1)
	if maximizing {
		bestEval = math.Inf(-1)
	}
	for i := range children {
		eval, _ := Minimax(&children[i], depth-1, !maximizing, w)
		// Strictly better, as in Search.
		if maximizing && eval > bestEval || !maximizing && eval < bestEval {
			bestEval, best = eval, children[i]
		}
	}
	return bestEval, best
}
