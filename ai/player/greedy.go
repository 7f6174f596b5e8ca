package player

import (
	"context"

	"github.com/samber/lo"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/movegen"
)

// GreedyPlayer plays the move with the best static evaluation, without
// looking at the reply.
type GreedyPlayer struct {
	Weights equity.Weights
}

func (p *GreedyPlayer) Name() string {
	return "greedy(w=" + p.Weights.String() + ")"
}

func (p *GreedyPlayer) ChooseBoard(ctx context.Context, b *board.Board, c board.Color) (board.Board, error) {
	boards := movegen.GenerateBoards(b, c)
	if len(boards) == 0 {
		return *b, ErrNoMove
	}
	sign := 1.0
	if c == board.Player1 {
		sign = -1.0
	}
	// MaxBy keeps the first of equal items.
	best := lo.MaxBy(boards, func(a, cur board.Board) bool {
		return sign*equity.Evaluate(&a, p.Weights) > sign*equity.Evaluate(&cur, p.Weights)
	})
	return best, nil
}
