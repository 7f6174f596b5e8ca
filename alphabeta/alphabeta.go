// Package alphabeta picks the next checkers position with a depth-limited
// minimax search and alpha-beta pruning.
package alphabeta

import (
	"math"
	"sync/atomic"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/common"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
**/

// MaximizingColor is the side whose score the search maximizes.
const MaximizingColor = board.Player2

// SideToMove maps the maximizing flag to a color.
func SideToMove(maximizing bool) board.Color {
	if maximizing {
		return MaximizingColor
	}
	return MaximizingColor.Opponent()
}

// Stats are node counts for one search.
type Stats struct {
	Nodes       uint64
	Leaves      uint64
	Cutoffs     uint64
	NoMoveNodes uint64
}

type counters struct {
	nodes       atomic.Uint64
	leaves      atomic.Uint64
	cutoffs     atomic.Uint64
	noMoveNodes atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Nodes:       c.nodes.Load(),
		Leaves:      c.leaves.Load(),
		Cutoffs:     c.cutoffs.Load(),
		NoMoveNodes: c.noMoveNodes.Load(),
	}
}

type searcher struct {
	weights equity.Weights
	stats   *counters
}

// Search returns the best score reachable from b in depth plies, and the
// board one ply down that leads to it. When the side to move has no move the
// score is -Inf (maximizing) or +Inf (minimizing) and b itself is returned.
// Ties go to the first board in generation order. A negative depth is
// treated as zero.
func Search(b *board.Board, depth int, alpha, beta float64, maximizing bool, w equity.Weights) (float64, board.Board) {
	s := &searcher{weights: w, stats: &counters{}}
	var pv common.PVLine
	return s.alphabeta(b, depth, alpha, beta, maximizing, &pv)
}

// SearchDefault searches for player 2 with a full window and default weights.
func SearchDefault(b *board.Board, depth int) (float64, board.Board) {
	return Search(b, depth, math.Inf(-1), math.Inf(1), true, equity.DefaultWeights())
}

// pv receives the line of boards that leads to the returned score.
func (s *searcher) alphabeta(b *board.Board, depth int, α, β float64, maximizing bool, pv *common.PVLine) (float64, board.Board) {
	s.stats.nodes.Add(1)
	if depth <= 0 {
		s.stats.leaves.Add(1)
		pv.Clear()
		return equity.Evaluate(b, s.weights), *b
	}
	children := movegen.GenerateBoards(b, SideToMove(maximizing))
	if len(children) == 0 {
		s.stats.noMoveNodes.Add(1)
		pv.Clear()
		return noMoveScore(maximizing), *b
	}

	best := children[0]
	pv.Update(best, common.PVLine{}, noMoveScore(maximizing))
	var childPV common.PVLine
	if maximizing {
		value := math.Inf(-1)
		for i := range children {
			score, _ := s.alphabeta(&children[i], depth-1, α, β, false, &childPV)
			if score > value {
				value = score
				best = children[i]
				pv.Update(best, childPV, score)
			}
			α = math.Max(α, value)
			if β <= α {
				s.stats.cutoffs.Add(1)
				break
			}
		}
		return value, best
	}

	value := math.Inf(1)
	for i := range children {
		score, _ := s.alphabeta(&children[i], depth-1, α, β, true, &childPV)
		if score < value {
			value = score
			best = children[i]
			pv.Update(best, childPV, score)
		}
		β = math.Min(β, value)
		if β <= α {
			s.stats.cutoffs.Add(1)
			break
		}
	}
	return value, best
}

func noMoveScore(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
