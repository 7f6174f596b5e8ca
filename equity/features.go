package equity

import (
	"github.com/samber/lo"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/movegen"
)

// Features are the raw per-side counts the evaluation is built from.
type Features struct {
	Pieces        int
	Kings         int
	Moves         int
	Opportunities int
	KingHopefuls  int
}

// Count computes the features of color c. Mobility is measured on single
// steps and first jumps only; chained captures are not followed.
func Count(b *board.Board, c board.Color) Features {
	var f Features
	f.Pieces, f.Kings = b.Count(c)
	for _, p := range b.Pieces(c) {
		hops := movegen.SingleHops(b, p)
		f.Moves += len(hops)
		f.Opportunities += lo.CountBy(hops, func(n *movegen.MoveNode) bool {
			return abs(n.Square.Row-p.Row) == 2
		})
		f.KingHopefuls += lo.CountBy(hops, func(n *movegen.MoveNode) bool {
			return n.KingHopeful != nil
		})
	}
	return f
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
