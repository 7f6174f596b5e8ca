package player

import (
	"context"

	"lukechampine.com/frand"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/movegen"
)

// RandomPlayer plays a uniformly random legal move.
type RandomPlayer struct{}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) ChooseBoard(ctx context.Context, b *board.Board, c board.Color) (board.Board, error) {
	boards := movegen.GenerateBoards(b, c)
	if len(boards) == 0 {
		return *b, ErrNoMove
	}
	return boards[frand.Intn(len(boards))], nil
}
