package player

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/alphabeta"
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
)

// EnginePlayer searches with alpha-beta. Scores are always from player 2's
// side, so player 2 maximizes and player 1 minimizes.
type EnginePlayer struct {
	solver *alphabeta.Solver
}

func NewEnginePlayer(depth int, w equity.Weights, threads int) *EnginePlayer {
	s := alphabeta.NewSolver(depth, w)
	s.SetThreads(threads)
	return &EnginePlayer{solver: s}
}

func (p *EnginePlayer) Solver() *alphabeta.Solver {
	return p.solver
}

func (p *EnginePlayer) Name() string {
	return fmt.Sprintf("engine(d=%d,w=%s)", p.solver.Depth(), p.solver.Weights())
}

func (p *EnginePlayer) ChooseBoard(ctx context.Context, b *board.Board, c board.Color) (board.Board, error) {
	res, err := p.solver.Solve(ctx, b, c == alphabeta.MaximizingColor)
	if err != nil {
		return *b, err
	}
	if res.Board.Equals(b) {
		return *b, ErrNoMove
	}
	log.Debug().Str("player", p.Name()).Float64("score", res.Score).
		Uint64("nodes", res.Stats.Nodes).Str("pv", res.PV.NLBString()).Msg("engine-chose")
	return res.Board, nil
}
