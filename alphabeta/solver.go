package alphabeta

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/common"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/movegen"
)

var ErrBadDepth = errors.New("search depth must not be negative")

// Result is what a Solve returns. Board is the position after the chosen
// move, or the starting position if the side to move is stuck. PV starts
// with Board and holds one board per remaining ply of the expected line.
type Result struct {
	Score float64
	Board board.Board
	PV    common.PVLine
	Stats Stats
}

// Solver wraps Search with logging, node statistics and optional parallel
// search of the root moves.
type Solver struct {
	depth   int
	weights equity.Weights
	threads int
}

func NewSolver(depth int, w equity.Weights) *Solver {
	return &Solver{depth: depth, weights: w, threads: 1}
}

func (s *Solver) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	s.threads = threads
}

func (s *Solver) SetDepth(depth int) {
	s.depth = depth
}

func (s *Solver) SetWeights(w equity.Weights) {
	s.weights = w
}

func (s *Solver) Depth() int {
	return s.depth
}

func (s *Solver) Weights() equity.Weights {
	return s.weights
}

// Solve searches b for the side given by maximizing. Cancelling ctx stops
// root moves that have not started yet; a root move already being searched
// runs to completion.
func (s *Solver) Solve(ctx context.Context, b *board.Board, maximizing bool) (Result, error) {
	if s.depth < 0 {
		return Result{}, ErrBadDepth
	}
	log.Debug().
		Int("depth", s.depth).
		Str("weights", s.weights.String()).
		Int("threads", s.threads).
		Str("side", SideToMove(maximizing).String()).
		Msg("alphabeta-solve-config")

	tstart := time.Now()
	sr := &searcher{weights: s.weights, stats: &counters{}}

	var res Result
	var err error
	if s.threads > 1 && s.depth > 0 {
		res, err = s.solveParallel(ctx, sr, b, maximizing)
	} else {
		res, err = s.solveSerial(ctx, sr, b, maximizing)
	}
	res.Stats = sr.stats.snapshot()

	log.Debug().
		Float64("score", res.Score).
		Uint64("nodes", res.Stats.Nodes).
		Uint64("leaves", res.Stats.Leaves).
		Uint64("cutoffs", res.Stats.Cutoffs).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return res, err
}

func (s *Solver) solveSerial(ctx context.Context, sr *searcher, b *board.Board, maximizing bool) (Result, error) {
	if s.depth == 0 {
		var pv common.PVLine
		score, bd := sr.alphabeta(b, 0, math.Inf(-1), math.Inf(1), maximizing, &pv)
		return Result{Score: score, Board: bd}, nil
	}
	sr.stats.nodes.Add(1)
	children := movegen.GenerateBoards(b, SideToMove(maximizing))
	if len(children) == 0 {
		sr.stats.noMoveNodes.Add(1)
		return Result{Score: noMoveScore(maximizing), Board: *b}, nil
	}
	α, β := math.Inf(-1), math.Inf(1)
	value := noMoveScore(maximizing)
	best := children[0]
	var pv, childPV common.PVLine
	pv.Update(best, common.PVLine{}, value)
	for i := range children {
		if err := ctx.Err(); err != nil {
			return Result{Score: value, Board: best, PV: pv}, err
		}
		score, _ := sr.alphabeta(&children[i], s.depth-1, α, β, !maximizing, &childPV)
		if maximizing {
			if score > value {
				value, best = score, children[i]
				pv.Update(best, childPV, score)
			}
			α = math.Max(α, value)
		} else {
			if score < value {
				value, best = score, children[i]
				pv.Update(best, childPV, score)
			}
			β = math.Min(β, value)
		}
		if β <= α {
			sr.stats.cutoffs.Add(1)
			break
		}
	}
	return Result{Score: value, Board: best, PV: pv}, nil
}

// solveParallel searches every root move with a full window, so each score
// is exact and the strict first-best choice matches the serial search.
func (s *Solver) solveParallel(ctx context.Context, sr *searcher, b *board.Board, maximizing bool) (Result, error) {
	sr.stats.nodes.Add(1)
	children := movegen.GenerateBoards(b, SideToMove(maximizing))
	if len(children) == 0 {
		sr.stats.noMoveNodes.Add(1)
		return Result{Score: noMoveScore(maximizing), Board: *b}, nil
	}
	scores := make([]float64, len(children))
	pvs := make([]common.PVLine, len(children))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for i := range children {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i], _ = sr.alphabeta(&children[i], s.depth-1, math.Inf(-1), math.Inf(1), !maximizing, &pvs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Score: noMoveScore(maximizing), Board: *b}, err
	}

	value := noMoveScore(maximizing)
	best := children[0]
	var pv common.PVLine
	pv.Update(best, common.PVLine{}, value)
	for i, score := range scores {
		if maximizing && score > value || !maximizing && score < value {
			value, best = score, children[i]
			pv.Update(best, pvs[i], score)
		}
	}
	return Result{Score: value, Board: best, PV: pv}, nil
}
